package service

import (
	"context"
	"time"

	"go-gin-parking/internal/metrics"
	"go-gin-parking/internal/model"
	"go-gin-parking/internal/queue"
	"go-gin-parking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// EventPublishingService 在停車交易成功後發送事件並記錄指標。
// 交易已落庫，發送失敗只記錄不回傳錯誤。
type EventPublishingService struct {
	next    ParkingService
	queue   queue.EventQueue
	metrics *metrics.ParkingMetrics
}

func NewEventPublishingService(next ParkingService, queue queue.EventQueue, metrics *metrics.ParkingMetrics) ParkingService {
	return &EventPublishingService{
		next:    next,
		queue:   queue,
		metrics: metrics,
	}
}

func (s *EventPublishingService) Admit(ctx context.Context, vehicleRegNumber string, category model.VehicleCategory, inTime time.Time) (*model.AdmitResult, error) {
	result, err := s.next.Admit(ctx, vehicleRegNumber, category, inTime)
	if err != nil {
		s.metrics.ObserveFailure(metrics.OperationAdmit, err)
		return nil, err
	}
	s.metrics.ObserveAdmission(result.Category)
	s.publish(ctx, model.NewAdmittedEvent(result))
	return result, nil
}

func (s *EventPublishingService) Release(ctx context.Context, vehicleRegNumber string, outTime time.Time) (*model.ReleaseResult, error) {
	result, err := s.next.Release(ctx, vehicleRegNumber, outTime)
	if err != nil {
		s.metrics.ObserveFailure(metrics.OperationRelease, err)
		return nil, err
	}
	s.metrics.ObserveRelease(result.Category, result.Recurring, result.Price)
	s.publish(ctx, model.NewReleasedEvent(result))
	return result, nil
}

func (s *EventPublishingService) Availability(ctx context.Context) ([]model.SpotAvailability, error) {
	stats, err := s.next.Availability(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.SetAvailability(stats)
	return stats, nil
}

func (s *EventPublishingService) History(ctx context.Context, vehicleRegNumber string) ([]*model.Ticket, error) {
	return s.next.History(ctx, vehicleRegNumber)
}

func (s *EventPublishingService) GetTicket(ctx context.Context, ticketNumber uuid.UUID) (*model.Ticket, error) {
	return s.next.GetTicket(ctx, ticketNumber)
}

func (s *EventPublishingService) publish(ctx context.Context, event *model.ParkingEvent) {
	// 交易已完成，不受請求取消影響，但不能無限期卡住回應
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.queue.PublishEvent(publishCtx, event)
	s.metrics.ObservePublish(err)
	if err != nil {
		logger.WithComponent("service").Error("failed to publish parking event",
			zap.String("event_id", event.EventID.String()),
			zap.String("kind", string(event.Kind)),
			zap.String("ticket_number", event.TicketNumber.String()),
			zap.Error(err))
	}
}
