package testutil

import (
	"context"
	"fmt"
	"log"

	"go-gin-parking/config"
	"go-gin-parking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup 連線測試用 PostgreSQL / Redis 並套用 migrations
func Setup() (*pgxpool.Pool, *redis.Client, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	log.Println("Test database connected successfully")

	if err := database.RunMigrations(testDB); err != nil {
		testDB.Close()
		return nil, nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	testRdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		testDB.Close()
		return nil, nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	log.Println("Test redis connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")

		testRdb.Close()
		log.Println("Test redis closed")
	}

	return testDB, testRdb, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試（如 queue 整合測試）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// ResetParking 清空票券與事件，所有車位恢復為空位 (保留 seed 的車位)
func ResetParking(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE ticket, parking_event RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	if _, err := pool.Exec(ctx, "UPDATE parking_spot SET available = TRUE"); err != nil {
		return fmt.Errorf("reset spots: %w", err)
	}
	return nil
}
