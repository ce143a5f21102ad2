package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-gin-parking/internal/model"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// ErrPoolNotWarmed 車位池尚未預熱，呼叫端應回退到資料庫
var ErrPoolNotWarmed = errors.New("spot pool not warmed up")

type RedisSpotPool interface {
	// 目前版本號；每次 Claim / Return 都會遞增
	Version(ctx context.Context) (int64, error)
	// 預熱：依資料庫車位快照重建各車種的空位集合。
	// 版本號與 version 不同代表快照之後池子有變動，不覆寫並回傳 false
	WarmUp(ctx context.Context, spots []*model.ParkingSpot, version int64) (bool, error)
	// 取得編號最小的空位 (不佔用)
	Next(ctx context.Context, category model.VehicleCategory) (int, error)
	// 佔用：從空位集合移除 (使用Lua腳本確保原子性)，回傳是否搶到
	Claim(ctx context.Context, category model.VehicleCategory, spotID int) (bool, error)
	// 歸還：放回空位集合
	Return(ctx context.Context, category model.VehicleCategory, spotID int) error
	// 空位數
	FreeCount(ctx context.Context, category model.VehicleCategory) (int64, error)
}

type RedisSpotPoolImpl struct {
	client *redis.Client
	claim  *redis.Script
	ret    *redis.Script
	warmUp *redis.Script
}

func NewRedisSpotPool(client *redis.Client) RedisSpotPool {
	return &RedisSpotPoolImpl{
		client: client,
		claim:  redis.NewScript(claimScript),
		ret:    redis.NewScript(returnScript),
		warmUp: redis.NewScript(warmUpScript),
	}
}

// 空位集合 key (sorted set, score = 車位編號)
func (p *RedisSpotPoolImpl) getFreeKey(category model.VehicleCategory) string {
	return fmt.Sprintf("parking:spots:%s:free", category)
}

// 預熱標記 key；空集合在 Redis 中不存在，需要另外標記
func (p *RedisSpotPoolImpl) getWarmKey(category model.VehicleCategory) string {
	return fmt.Sprintf("parking:spots:%s:warm", category)
}

// 版本號 key，所有車種共用
func (p *RedisSpotPoolImpl) getVersionKey() string {
	return "parking:spots:version"
}

/*
佔用車位
1. 遞增版本號，讓進行中的 WarmUp 放棄舊快照
2. 檢查是否預熱
3. ZREM 成功代表搶到，失敗代表已被其他終端機佔用
*/
const claimScript = `
	local free_key = KEYS[1]
	local warm_key = KEYS[2]
	local version_key = KEYS[3]
	local spot_id = ARGV[1]

	redis.call('INCR', version_key)
	if redis.call('EXISTS', warm_key) == 0 then
		return -3
	end

	if redis.call('ZREM', free_key, spot_id) == 1 then
		return 1
	end
	return 0
`

const returnScript = `
	local free_key = KEYS[1]
	local warm_key = KEYS[2]
	local version_key = KEYS[3]
	local spot_id = ARGV[1]

	redis.call('INCR', version_key)
	if redis.call('EXISTS', warm_key) == 0 then
		return -3
	end

	redis.call('ZADD', free_key, tonumber(spot_id), spot_id)
	return 1
`

/*
預熱 (compare-and-set)
KEYS[1] 版本號，之後每個車種依序為 free_key, warm_key
ARGV[1] 讀取快照前的版本號，ARGV[i+1] 第 i 個車種的空位編號 (逗號分隔)
快照之後有 Claim / Return 時版本號已變，回傳 0 不覆寫
*/
const warmUpScript = `
	local current = redis.call('GET', KEYS[1]) or '0'
	if current ~= ARGV[1] then
		return 0
	end

	local n = (#KEYS - 1) / 2
	for i = 1, n do
		local free_key = KEYS[2 * i]
		local warm_key = KEYS[2 * i + 1]
		redis.call('DEL', free_key)
		for id in string.gmatch(ARGV[i + 1], '[^,]+') do
			redis.call('ZADD', free_key, tonumber(id), id)
		end
		redis.call('SET', warm_key, '1')
	end
	return 1
`

func (p *RedisSpotPoolImpl) Version(ctx context.Context) (int64, error) {
	v, err := p.client.Get(ctx, p.getVersionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (p *RedisSpotPoolImpl) WarmUp(ctx context.Context, spots []*model.ParkingSpot, version int64) (bool, error) {
	free := make(map[model.VehicleCategory][]string, len(model.VehicleCategories))
	for _, spot := range spots {
		if spot.Available {
			free[spot.Category] = append(free[spot.Category], strconv.Itoa(spot.ID))
		}
	}

	keys := []string{p.getVersionKey()}
	args := []interface{}{strconv.FormatInt(version, 10)}
	for _, category := range model.VehicleCategories {
		keys = append(keys, p.getFreeKey(category), p.getWarmKey(category))
		args = append(args, strings.Join(free[category], ","))
	}

	applied, err := p.warmUp.Run(ctx, p.client, keys, args...).Int64()
	if err != nil {
		return false, err
	}
	return applied == 1, nil
}

func (p *RedisSpotPoolImpl) Next(ctx context.Context, category model.VehicleCategory) (int, error) {
	warm, err := p.client.Exists(ctx, p.getWarmKey(category)).Result()
	if err != nil {
		return 0, err
	}
	if warm == 0 {
		return 0, ErrPoolNotWarmed
	}

	ids, err := p.client.ZRange(ctx, p.getFreeKey(category), 0, 0).Result()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, apperrors.ErrLotFull
	}

	id, err := strconv.Atoi(ids[0])
	if err != nil {
		return 0, fmt.Errorf("invalid spot id %q: %w", ids[0], err)
	}
	return id, nil
}

func (p *RedisSpotPoolImpl) Claim(ctx context.Context, category model.VehicleCategory, spotID int) (bool, error) {
	keys := []string{p.getFreeKey(category), p.getWarmKey(category), p.getVersionKey()}
	code, err := p.claim.Run(ctx, p.client, keys, strconv.Itoa(spotID)).Int64()
	if err != nil {
		return false, err
	}

	switch code {
	case 1:
		return true, nil
	case 0:
		return false, nil
	case -3:
		return false, ErrPoolNotWarmed
	default:
		return false, fmt.Errorf("unexpected claim result %d", code)
	}
}

func (p *RedisSpotPoolImpl) Return(ctx context.Context, category model.VehicleCategory, spotID int) error {
	keys := []string{p.getFreeKey(category), p.getWarmKey(category), p.getVersionKey()}
	code, err := p.ret.Run(ctx, p.client, keys, strconv.Itoa(spotID)).Int64()
	if err != nil {
		return err
	}
	if code == -3 {
		return ErrPoolNotWarmed
	}
	return nil
}

func (p *RedisSpotPoolImpl) FreeCount(ctx context.Context, category model.VehicleCategory) (int64, error) {
	return p.client.ZCard(ctx, p.getFreeKey(category)).Result()
}
