package service_test

import (
	"context"
	"sort"
	"sync"

	"go-gin-parking/internal/model"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/google/uuid"
)

// memorySpotStore 以 mutex 保證與資料庫版相同的 compare-and-set 語意
type memorySpotStore struct {
	mu    sync.Mutex
	spots map[int]*model.ParkingSpot
}

func newMemorySpotStore(cars, bikes int) *memorySpotStore {
	s := &memorySpotStore{spots: map[int]*model.ParkingSpot{}}
	id := 1
	for i := 0; i < cars; i++ {
		s.spots[id] = &model.ParkingSpot{ID: id, Category: model.VehicleCategoryCar, Available: true}
		id++
	}
	for i := 0; i < bikes; i++ {
		s.spots[id] = &model.ParkingSpot{ID: id, Category: model.VehicleCategoryBike, Available: true}
		id++
	}
	return s
}

func (s *memorySpotStore) sortedIDs() []int {
	ids := make([]int, 0, len(s.spots))
	for id := range s.spots {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *memorySpotStore) NextAvailable(_ context.Context, category model.VehicleCategory) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.sortedIDs() {
		if spot := s.spots[id]; spot.Category == category && spot.Available {
			return id, nil
		}
	}
	return 0, apperrors.ErrLotFull
}

func (s *memorySpotStore) SetAvailability(_ context.Context, spotID int, available bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spot, ok := s.spots[spotID]
	if !ok {
		return false, apperrors.ErrSpotNotFound
	}
	if !available && !spot.Available {
		return false, nil
	}
	spot.Available = available
	return true, nil
}

func (s *memorySpotStore) FindByID(_ context.Context, spotID int) (*model.ParkingSpot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spot, ok := s.spots[spotID]
	if !ok {
		return nil, apperrors.ErrSpotNotFound
	}
	copied := *spot
	return &copied, nil
}

func (s *memorySpotStore) List(_ context.Context, category *model.VehicleCategory) ([]*model.ParkingSpot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.ParkingSpot
	for _, id := range s.sortedIDs() {
		spot := *s.spots[id]
		if category == nil || spot.Category == *category {
			out = append(out, &spot)
		}
	}
	return out, nil
}

func (s *memorySpotStore) Availability(_ context.Context) ([]model.SpotAvailability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := make([]model.SpotAvailability, 0, len(model.VehicleCategories))
	for _, category := range model.VehicleCategories {
		stat := model.SpotAvailability{Category: category}
		for _, spot := range s.spots {
			if spot.Category != category {
				continue
			}
			stat.Total++
			if spot.Available {
				stat.Available++
			}
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

func (s *memorySpotStore) isAvailable(spotID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spots[spotID].Available
}

type memoryTicketStore struct {
	mu      sync.Mutex
	nextID  int
	tickets []*model.Ticket
	writes  int
}

func newMemoryTicketStore() *memoryTicketStore {
	return &memoryTicketStore{nextID: 1}
}

func (s *memoryTicketStore) GetOpenTicket(_ context.Context, vehicleRegNumber string) (*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.VehicleRegNumber == vehicleRegNumber && t.IsOpen() {
			copied := *t
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (s *memoryTicketStore) HasPriorClosedTicket(_ context.Context, vehicleRegNumber string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.VehicleRegNumber == vehicleRegNumber && !t.IsOpen() {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryTicketStore) Insert(_ context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.VehicleRegNumber == ticket.VehicleRegNumber && t.IsOpen() {
			return nil, apperrors.ErrAlreadyParked
		}
	}
	copied := *ticket
	copied.ID = s.nextID
	if copied.TicketNumber == uuid.Nil {
		copied.TicketNumber = uuid.New()
	}
	s.nextID++
	s.tickets = append(s.tickets, &copied)
	s.writes++
	result := copied
	return &result, nil
}

func (s *memoryTicketStore) Update(_ context.Context, ticket *model.Ticket) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.ID == ticket.ID && t.IsOpen() {
			t.Price = ticket.Price
			t.OutTime = ticket.OutTime
			s.writes++
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryTicketStore) FindByTicketNumber(_ context.Context, ticketNumber uuid.UUID) (*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.TicketNumber == ticketNumber {
			copied := *t
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (s *memoryTicketStore) ListByRegistration(_ context.Context, vehicleRegNumber string) ([]*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Ticket
	for i := len(s.tickets) - 1; i >= 0; i-- {
		if t := s.tickets[i]; t.VehicleRegNumber == vehicleRegNumber {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memoryTicketStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
