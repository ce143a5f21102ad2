package worker

import (
	"context"
	"errors"

	"go-gin-parking/internal/metrics"
	"go-gin-parking/internal/queue"
	"go-gin-parking/internal/service"
	"go-gin-parking/pkg/logger"

	"go.uber.org/zap"
)

type AuditWorker interface {
	// 訂閱停車事件並寫入稽核表；回傳的 channel 在訂閱結束時關閉
	Start(ctx context.Context) (<-chan struct{}, error)
}

type AuditWorkerImpl struct {
	service service.ParkingEventService
	queue   queue.EventQueue
	metrics *metrics.ParkingMetrics
}

func NewAuditWorker(service service.ParkingEventService, queue queue.EventQueue, metrics *metrics.ParkingMetrics) AuditWorker {
	return &AuditWorkerImpl{
		service: service,
		queue:   queue,
		metrics: metrics,
	}
}

func (w *AuditWorkerImpl) Start(ctx context.Context) (<-chan struct{}, error) {
	msgs, err := w.queue.SubscribeEvents(ctx)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			err := w.service.Record(ctx, msg.Data)
			if w.metrics != nil {
				w.metrics.ObserveAudit(err)
			}
			if err == nil {
				msg.Ack()
				continue
			}
			if errors.Is(err, context.Canceled) {
				// 關機中，留給下次啟動重送
				msg.Nack(true)
				continue
			}
			logger.WithComponent("worker").Warn("record parking event failed, will retry",
				zap.String("event_id", msg.Data.EventID.String()),
				zap.String("kind", string(msg.Data.Kind)),
				zap.Error(err))
			msg.Nack(true)
		}
	}()
	return done, nil
}
