package cache

import (
	"context"
	"errors"
	"sync"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/repository"
	apperrors "go-gin-parking/pkg/app_errors"
	"go-gin-parking/pkg/logger"

	"go.uber.org/zap"
)

// Resync 快照被並行的 Claim / Return 作廢時的重試次數
const resyncAttempts = 3

// CachedSpotStore 以 Redis 空位池分配車位，並同步寫回資料庫 (write-through)。
// 資料庫是唯一的事實來源；Redis 與資料庫不一致時以資料庫為準，並由 Resync 重建。
type CachedSpotStore struct {
	db   repository.ParkingSpotRepository
	free RedisSpotPool

	// 車位編號 -> 車種；車種建立後不變，可以長期快取
	mu         sync.RWMutex
	categories map[int]model.VehicleCategory
}

func NewCachedSpotStore(db repository.ParkingSpotRepository, free RedisSpotPool) *CachedSpotStore {
	return &CachedSpotStore{
		db:         db,
		free:       free,
		categories: make(map[int]model.VehicleCategory),
	}
}

var _ repository.ParkingSpotRepository = (*CachedSpotStore)(nil)

// Resync 依資料庫狀態重建 Redis 空位池。
// 快照期間池子有變動時放棄該快照重來，避免覆蓋掉剛歸還的車位
func (s *CachedSpotStore) Resync(ctx context.Context) error {
	log := logger.WithComponent("cache")

	for attempt := 1; attempt <= resyncAttempts; attempt++ {
		version, err := s.free.Version(ctx)
		if err != nil {
			return err
		}
		spots, err := s.db.List(ctx, nil)
		if err != nil {
			return err
		}
		s.remember(spots...)

		applied, err := s.free.WarmUp(ctx, spots, version)
		if err != nil {
			return err
		}
		if !applied {
			log.Debug("spot pool changed during resync, retrying", zap.Int("attempt", attempt))
			continue
		}

		for _, category := range model.VehicleCategories {
			n, err := s.free.FreeCount(ctx, category)
			if err != nil {
				return err
			}
			log.Debug("spot pool resynced", zap.String("category", string(category)), zap.Int64("free", n))
		}
		return nil
	}

	// 池子持續在變動；NextAvailable 會以資料庫確認，留給下一輪 Resync
	log.Warn("spot pool resync skipped, pool kept changing", zap.Int("attempts", resyncAttempts))
	return nil
}

func (s *CachedSpotStore) NextAvailable(ctx context.Context, category model.VehicleCategory) (int, error) {
	id, err := s.free.Next(ctx, category)
	switch {
	case err == nil:
		s.remember(&model.ParkingSpot{ID: id, Category: category})
		return id, nil
	case errors.Is(err, ErrPoolNotWarmed):
		return s.db.NextAvailable(ctx, category)
	case errors.Is(err, apperrors.ErrLotFull):
		// 池子可能落後於資料庫 (歸還失敗)，滿位前以資料庫確認
		id, err := s.db.NextAvailable(ctx, category)
		if err != nil {
			return 0, err
		}
		logger.WithComponent("cache").Warn("spot pool behind database, spot is free",
			zap.String("category", string(category)),
			zap.Int("spot_id", id))
		s.remember(&model.ParkingSpot{ID: id, Category: category})
		return id, nil
	default:
		return 0, err
	}
}

func (s *CachedSpotStore) SetAvailability(ctx context.Context, spotID int, available bool) (bool, error) {
	category, err := s.categoryOf(ctx, spotID)
	if err != nil {
		return false, err
	}
	spot := &model.ParkingSpot{ID: spotID, Category: category}
	if available {
		return s.release(ctx, spot)
	}
	return s.occupy(ctx, spot)
}

func (s *CachedSpotStore) occupy(ctx context.Context, spot *model.ParkingSpot) (bool, error) {
	log := logger.WithComponent("cache").With(zap.Int("spot_id", spot.ID))

	// 1. Redis 原子佔用
	claimed, err := s.free.Claim(ctx, spot.Category, spot.ID)
	if errors.Is(err, ErrPoolNotWarmed) {
		return s.db.SetAvailability(ctx, spot.ID, false)
	}
	if err != nil {
		return false, err
	}
	if !claimed {
		// 不在池中：可能被其他終端機搶走，也可能池子落後；交給資料庫的條件更新判定
		return s.db.SetAvailability(ctx, spot.ID, false)
	}

	// 2. 寫回資料庫
	applied, err := s.db.SetAvailability(ctx, spot.ID, false)
	if err != nil {
		// 資料庫失敗：歸還 Redis 空位。Return 使用 context.Background()，確保一定會執行
		if rbErr := s.free.Return(context.Background(), spot.Category, spot.ID); rbErr != nil {
			log.Error("failed to return spot to pool", zap.Error(rbErr))
		}
		return false, err
	}
	if !applied {
		// Redis 落後於資料庫：該車位實際已被佔用，不歸還
		log.Warn("spot pool out of sync, spot already occupied in database")
		return false, nil
	}

	return true, nil
}

func (s *CachedSpotStore) release(ctx context.Context, spot *model.ParkingSpot) (bool, error) {
	applied, err := s.db.SetAvailability(ctx, spot.ID, true)
	if err != nil || !applied {
		return applied, err
	}

	// 歸還失敗只代表 Redis 中該車位看起來仍被佔用；NextAvailable 滿位時會查資料庫，Resync 會修正
	if err := s.free.Return(ctx, spot.Category, spot.ID); err != nil && !errors.Is(err, ErrPoolNotWarmed) {
		logger.WithComponent("cache").Warn("failed to return spot to pool",
			zap.Int("spot_id", spot.ID), zap.Error(err))
	}
	return true, nil
}

// categoryOf 先查快取，沒有才讀資料庫
func (s *CachedSpotStore) categoryOf(ctx context.Context, spotID int) (model.VehicleCategory, error) {
	s.mu.RLock()
	category, ok := s.categories[spotID]
	s.mu.RUnlock()
	if ok {
		return category, nil
	}

	spot, err := s.db.FindByID(ctx, spotID)
	if err != nil {
		return "", err
	}
	s.remember(spot)
	return spot.Category, nil
}

func (s *CachedSpotStore) remember(spots ...*model.ParkingSpot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, spot := range spots {
		s.categories[spot.ID] = spot.Category
	}
}

func (s *CachedSpotStore) FindByID(ctx context.Context, spotID int) (*model.ParkingSpot, error) {
	return s.db.FindByID(ctx, spotID)
}

func (s *CachedSpotStore) List(ctx context.Context, category *model.VehicleCategory) ([]*model.ParkingSpot, error) {
	spots, err := s.db.List(ctx, category)
	if err == nil {
		s.remember(spots...)
	}
	return spots, err
}

func (s *CachedSpotStore) Availability(ctx context.Context) ([]model.SpotAvailability, error) {
	return s.db.Availability(ctx)
}
