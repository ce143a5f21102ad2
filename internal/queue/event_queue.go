package queue

import (
	"context"
	"time"

	"go-gin-parking/internal/model"
	"go-gin-parking/pkg/logger"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.ParkingEvent
	Ack  func()
	Nack func(requeue bool)
}

// EventQueue 停車事件的傳遞通道，由 AuditWorker 消費寫入稽核表
type EventQueue interface {
	PublishEvent(ctx context.Context, event *model.ParkingEvent) error
	SubscribeEvents(ctx context.Context) (<-chan Delivery, error)
}

// MemoryEventQueueConfig 重送設定；零值欄位使用預設。
type MemoryEventQueueConfig struct {
	MaxRetryCount int           // 投遞次數達上限後丟棄
	RetryBackoff  time.Duration // 第 n 次投遞失敗後等待 n * RetryBackoff 再放回隊列
}

func defaultMemoryQueueConfig() MemoryEventQueueConfig {
	return MemoryEventQueueConfig{
		MaxRetryCount: 5,
		RetryBackoff:  100 * time.Millisecond,
	}
}

// memoryMessage 事件與已投遞次數
type memoryMessage struct {
	event      *model.ParkingEvent
	deliveries int
}

type MemoryEventQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch  chan *memoryMessage
	cfg MemoryEventQueueConfig
}

func NewMemoryEventQueue(bufferSize int, config *MemoryEventQueueConfig) EventQueue {
	cfg := defaultMemoryQueueConfig()
	if config != nil {
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.RetryBackoff > 0 {
			cfg.RetryBackoff = config.RetryBackoff
		}
	}
	return &MemoryEventQueueImpl{
		ch:  make(chan *memoryMessage, bufferSize),
		cfg: cfg,
	}
}

func (q *MemoryEventQueueImpl) PublishEvent(ctx context.Context, event *model.ParkingEvent) error {
	select {
	case q.ch <- &memoryMessage{event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryEventQueueImpl) SubscribeEvents(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.ch:
				if !ok {
					return
				}

				msg.deliveries++
				d := Delivery{
					Data: msg.event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.requeue(msg)
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// requeue 延遲後放回隊列；超過重試上限或 buffer 滿時丟棄
func (q *MemoryEventQueueImpl) requeue(msg *memoryMessage) {
	log := logger.WithComponent("mq").With(
		zap.String("event_id", msg.event.EventID.String()),
		zap.Int("deliveries", msg.deliveries))

	if msg.deliveries >= q.cfg.MaxRetryCount {
		log.Warn("discard poison message", zap.Int("max_retry", q.cfg.MaxRetryCount))
		return
	}

	time.AfterFunc(time.Duration(msg.deliveries)*q.cfg.RetryBackoff, func() {
		select {
		case q.ch <- msg:
		default:
			log.Warn("queue full, dropping requeued message")
		}
	})
}
