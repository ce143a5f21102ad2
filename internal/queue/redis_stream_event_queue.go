package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-parking/internal/model"
	"go-gin-parking/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "parking:events:stream"
	ConsumerGroupName  = "audit-workers"
	ConsumerNamePrefix = "auditor"

	eventField = "event"
)

// RedisStreamEventQueueConfig 可注入的逾時與重試設定；零值欄位使用預設。
type RedisStreamEventQueueConfig struct {
	ClaimMinIdleTime   time.Duration // PEL 中超過此時間才被 XAUTOCLAIM 領取
	MaxRetryCount      int           // 超過此次數視為毒藥消息並丟棄
	ReadGroupBlockTime time.Duration // XReadGroup 阻塞時間
	MaxStreamLen       int64         // XADD 近似裁切長度
}

func defaultRedisStreamConfig() RedisStreamEventQueueConfig {
	return RedisStreamEventQueueConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
		MaxStreamLen:       10000,
	}
}

type RedisStreamEventQueueImpl struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamEventQueueConfig
}

// NewRedisStreamEventQueue 建立 Redis Stream 版 EventQueue 並確保 consumer group 存在。
func NewRedisStreamEventQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamEventQueueConfig) (EventQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
		if config.MaxStreamLen > 0 {
			cfg.MaxStreamLen = config.MaxStreamLen
		}
	}
	q := &RedisStreamEventQueueImpl{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamEventQueueImpl) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamEventQueueImpl) PublishEvent(ctx context.Context, event *model.ParkingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.streamKey,
		MaxLen: q.cfg.MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			eventField: string(payload),
			"kind":     string(event.Kind),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamEventQueueImpl) SubscribeEvents(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		go q.runAutoClaim(ctx, out)
		q.runReadLoop(ctx, out)
	}()
	return out, nil
}

func (q *RedisStreamEventQueueImpl) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			q.readAndDeliver(ctx, out)
		}
	}
}

// readAndDeliver 只讀新訊息 (">")；已投遞但未 Ack 的訊息留在 PEL，逾時後由 XAUTOCLAIM 領回重試。
func (q *RedisStreamEventQueueImpl) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.WithComponent("mq").Error("XReadGroup failed", zap.Error(err))
		time.Sleep(time.Second)
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			if !q.deliver(ctx, out, msg) {
				return
			}
		}
	}
}

// deliver 投遞一筆訊息；ctx 取消時回傳 false
func (q *RedisStreamEventQueueImpl) deliver(ctx context.Context, out chan<- Delivery, msg redis.XMessage) bool {
	d := q.newDelivery(ctx, msg)
	if d == nil {
		return true
	}
	select {
	case out <- *d:
		return true
	case <-ctx.Done():
		return false
	}
}

// isPoison 重試次數超過上限的訊息直接 Ack 丟棄
func (q *RedisStreamEventQueueImpl) isPoison(ctx context.Context, messageID string) bool {
	n, err := q.retryCount(ctx, messageID)
	if err != nil {
		logger.WithComponent("mq").Warn("retryCount failed", zap.String("message_id", messageID), zap.Error(err))
		return false
	}
	if n < q.cfg.MaxRetryCount {
		return false
	}
	logger.WithComponent("mq").Warn("discard poison message",
		zap.String("message_id", messageID),
		zap.Int("retries", n),
		zap.Int("max_retries", q.cfg.MaxRetryCount))
	_ = q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err()
	return true
}

func (q *RedisStreamEventQueueImpl) retryCount(ctx context.Context, messageID string) (int, error) {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return int(pending[0].RetryCount), nil
}

// runAutoClaim 定時用 XAUTOCLAIM 領取逾時未 Ack 的訊息
func (q *RedisStreamEventQueueImpl) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	startID := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, nextID, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.streamKey,
				Group:    q.groupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    startID,
			}).Result()

			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() != nil {
					return
				}
				logger.WithComponent("mq").Error("XAutoClaim failed", zap.Error(err))
				continue
			}
			startID = "0-0"
			if nextID != "" {
				startID = nextID
			}

			for _, msg := range claimed {
				if q.isPoison(ctx, msg.ID) {
					continue
				}
				if !q.deliver(ctx, out, msg) {
					return
				}
			}
		}
	}
}

// newDelivery 將 stream 訊息還原成事件並綁定 Ack/Nack；格式錯誤的訊息直接 Ack 掉
func (q *RedisStreamEventQueueImpl) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	payload, ok := msg.Values[eventField].(string)
	if !ok {
		logger.WithComponent("mq").Warn("invalid message: missing event field", zap.String("message_id", msg.ID))
		q.ack(ctx, msg.ID)
		return nil
	}
	var event model.ParkingEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		logger.WithComponent("mq").Warn("unmarshal event failed", zap.String("message_id", msg.ID), zap.Error(err))
		q.ack(ctx, msg.ID)
		return nil
	}
	msgID := msg.ID
	return &Delivery{
		Data: &event,
		Ack:  func() { q.ack(ctx, msgID) },
		Nack: func(requeue bool) {
			if requeue {
				// 留在 PEL，等 ClaimMinIdleTime 後由 XAUTOCLAIM 領取，形成延遲重試
				logger.WithComponent("mq").Info("message nack(requeue), will retry",
					zap.String("message_id", msgID),
					zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			q.ack(ctx, msgID)
		},
	}
}

func (q *RedisStreamEventQueueImpl) ack(ctx context.Context, messageID string) {
	if err := q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err(); err != nil {
		logger.WithComponent("mq").Error("XAck failed", zap.String("message_id", messageID), zap.Error(err))
	}
}
