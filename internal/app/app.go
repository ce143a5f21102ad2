package app

import (
	"context"
	"fmt"
	"time"

	"go-gin-parking/config"
	"go-gin-parking/internal/cache"
	"go-gin-parking/internal/database"
	"go-gin-parking/internal/fare"
	"go-gin-parking/internal/metrics"
	"go-gin-parking/internal/queue"
	"go-gin-parking/internal/repository"
	"go-gin-parking/internal/service"
	"go-gin-parking/internal/worker"
	"go-gin-parking/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	QueueDriverRedis  = "redis"
	QueueDriverMemory = "memory"
	SpotPoolRedis     = "redis"
	SpotPoolDB        = "db"

	memoryQueueBuffer = 1024
	resyncInterval    = time.Minute
)

// App 組裝好的依賴；server 與 terminal 共用
type App struct {
	Config         *config.Config
	Pool           *pgxpool.Pool
	Redis          *redis.Client
	Metrics        *metrics.ParkingMetrics
	Queue          queue.EventQueue
	ParkingService service.ParkingService
	EventService   service.ParkingEventService
	AuditWorker    worker.AuditWorker

	spotPool *cache.CachedSpotStore
}

func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := validateDrivers(cfg.Server); err != nil {
		return nil, err
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := database.RunMigrations(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	a := &App{
		Config:  cfg,
		Pool:    pool,
		Metrics: metrics.NewParkingMetrics(),
	}

	if needsRedis(cfg.Server) {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
	}

	var spots repository.ParkingSpotRepository = repository.NewParkingSpotRepository(pool)
	if cfg.Server.SpotPool == SpotPoolRedis {
		a.spotPool = cache.NewCachedSpotStore(spots, cache.NewRedisSpotPool(a.Redis))
		if err := a.spotPool.Resync(ctx); err != nil {
			// 冷啟動失敗不致命：未預熱時 CachedSpotStore 會直接走資料庫
			logger.WithComponent("cache").Warn("initial spot pool resync failed", zap.Error(err))
		}
		spots = a.spotPool
	}

	switch cfg.Server.QueueDriver {
	case QueueDriverRedis:
		q, err := queue.NewRedisStreamEventQueue(ctx, a.Redis, "", nil)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init event queue: %w", err)
		}
		a.Queue = q
	default:
		a.Queue = queue.NewMemoryEventQueue(memoryQueueBuffer, nil)
	}

	calculator := fare.NewCalculator(cfg.Fare)
	core := service.NewParkingService(spots, repository.NewTicketRepository(pool), calculator)
	a.ParkingService = service.NewEventPublishingService(core, a.Queue, a.Metrics)
	a.EventService = service.NewParkingEventService(repository.NewParkingEventRepository(pool))
	a.AuditWorker = worker.NewAuditWorker(a.EventService, a.Queue, a.Metrics)

	return a, nil
}

// StartBackground 啟動稽核 worker 與車位池定期校正，ctx 結束時停止
func (a *App) StartBackground(ctx context.Context) (<-chan struct{}, error) {
	workerDone, err := a.AuditWorker.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start audit worker: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if a.spotPool != nil {
			a.runResync(ctx)
		}
		<-workerDone
	}()
	return done, nil
}

// runResync 定期以資料庫狀態重建 Redis 空位池，修正歸還失敗造成的偏差
func (a *App) runResync(ctx context.Context) {
	ticker := time.NewTicker(resyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.spotPool.Resync(ctx); err != nil && ctx.Err() == nil {
				logger.WithComponent("cache").Warn("spot pool resync failed", zap.Error(err))
			}
			if _, err := a.ParkingService.Availability(ctx); err != nil && ctx.Err() == nil {
				logger.WithComponent("cache").Warn("availability refresh failed", zap.Error(err))
			}
		}
	}
}

func (a *App) Close() {
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.Pool != nil {
		a.Pool.Close()
	}
}

func needsRedis(cfg config.ServerConfig) bool {
	return cfg.QueueDriver == QueueDriverRedis || cfg.SpotPool == SpotPoolRedis
}

func validateDrivers(cfg config.ServerConfig) error {
	switch cfg.QueueDriver {
	case QueueDriverRedis, QueueDriverMemory:
	default:
		return fmt.Errorf("unknown QUEUE_DRIVER %q", cfg.QueueDriver)
	}
	switch cfg.SpotPool {
	case SpotPoolRedis, SpotPoolDB:
	default:
		return fmt.Errorf("unknown SPOT_POOL %q", cfg.SpotPool)
	}
	return nil
}
