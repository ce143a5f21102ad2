//go:build integration

package cache

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/testutil"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}
	testRdb = rdb

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func clearRedis(t *testing.T) {
	t.Helper()
	require.NoError(t, testRdb.FlushDB(context.Background()).Err())
}

func warmUp(t *testing.T, pool RedisSpotPool, spots []*model.ParkingSpot) {
	t.Helper()
	ctx := context.Background()
	version, err := pool.Version(ctx)
	require.NoError(t, err)
	applied, err := pool.WarmUp(ctx, spots, version)
	require.NoError(t, err)
	require.True(t, applied)
}

var seededSpots = []*model.ParkingSpot{
	{ID: 1, Category: model.VehicleCategoryCar, Available: true},
	{ID: 2, Category: model.VehicleCategoryCar, Available: false},
	{ID: 3, Category: model.VehicleCategoryCar, Available: true},
	{ID: 4, Category: model.VehicleCategoryBike, Available: false},
	{ID: 5, Category: model.VehicleCategoryBike, Available: false},
}

func TestRedisSpotPool_ColdPool(t *testing.T) {
	clearRedis(t)
	ctx := context.Background()
	pool := NewRedisSpotPool(testRdb)

	_, err := pool.Next(ctx, model.VehicleCategoryCar)
	assert.ErrorIs(t, err, ErrPoolNotWarmed)

	_, err = pool.Claim(ctx, model.VehicleCategoryCar, 1)
	assert.ErrorIs(t, err, ErrPoolNotWarmed)

	assert.ErrorIs(t, pool.Return(ctx, model.VehicleCategoryCar, 1), ErrPoolNotWarmed)
}

func TestRedisSpotPool_WarmUpClaimReturn(t *testing.T) {
	clearRedis(t)
	ctx := context.Background()
	pool := NewRedisSpotPool(testRdb)
	warmUp(t, pool, seededSpots)

	next, err := pool.Next(ctx, model.VehicleCategoryCar)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	// 所有機車位都被佔用，但池已預熱
	_, err = pool.Next(ctx, model.VehicleCategoryBike)
	assert.ErrorIs(t, err, apperrors.ErrLotFull)

	claimed, err := pool.Claim(ctx, model.VehicleCategoryCar, 1)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = pool.Claim(ctx, model.VehicleCategoryCar, 1)
	require.NoError(t, err)
	assert.False(t, claimed)

	next, err = pool.Next(ctx, model.VehicleCategoryCar)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	require.NoError(t, pool.Return(ctx, model.VehicleCategoryCar, 1))
	count, err := pool.FreeCount(ctx, model.VehicleCategoryCar)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRedisSpotPool_ConcurrentClaim(t *testing.T) {
	clearRedis(t)
	ctx := context.Background()
	pool := NewRedisSpotPool(testRdb)
	warmUp(t, pool, seededSpots)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := pool.Claim(ctx, model.VehicleCategoryCar, 3)
			assert.NoError(t, err)
			if claimed {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestRedisSpotPool_WarmUpRejectsStaleSnapshot(t *testing.T) {
	clearRedis(t)
	ctx := context.Background()
	pool := NewRedisSpotPool(testRdb)
	warmUp(t, pool, seededSpots)

	// 讀取快照時車位 2 仍被佔用
	version, err := pool.Version(ctx)
	require.NoError(t, err)

	// 快照之後車位 2 出場歸還
	require.NoError(t, pool.Return(ctx, model.VehicleCategoryCar, 2))

	applied, err := pool.WarmUp(ctx, seededSpots, version)
	require.NoError(t, err)
	assert.False(t, applied)

	count, err := pool.FreeCount(ctx, model.VehicleCategoryCar)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
