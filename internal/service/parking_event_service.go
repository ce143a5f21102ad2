package service

import (
	"context"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/repository"
)

// ParkingEventService 稽核事件的寫入與查詢
type ParkingEventService interface {
	Record(ctx context.Context, event *model.ParkingEvent) error
	List(ctx context.Context, limit int) ([]*model.ParkingEvent, error)
	ListByRegistration(ctx context.Context, vehicleRegNumber string) ([]*model.ParkingEvent, error)
}

type ParkingEventServiceImpl struct {
	repo repository.ParkingEventRepository
}

func NewParkingEventService(repo repository.ParkingEventRepository) ParkingEventService {
	return &ParkingEventServiceImpl{repo: repo}
}

func (s *ParkingEventServiceImpl) Record(ctx context.Context, event *model.ParkingEvent) error {
	return s.repo.Create(ctx, event)
}

func (s *ParkingEventServiceImpl) List(ctx context.Context, limit int) ([]*model.ParkingEvent, error) {
	return s.repo.List(ctx, limit)
}

func (s *ParkingEventServiceImpl) ListByRegistration(ctx context.Context, vehicleRegNumber string) ([]*model.ParkingEvent, error) {
	reg, err := normalizeRegistration(vehicleRegNumber)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByRegistration(ctx, reg)
}
