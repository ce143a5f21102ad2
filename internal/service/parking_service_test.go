package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go-gin-parking/internal/fare"
	"go-gin-parking/internal/model"
	"go-gin-parking/internal/repository/mocks"
	"go-gin-parking/internal/service"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var entry = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type lot struct {
	spots   *memorySpotStore
	tickets *memoryTicketStore
	service service.ParkingService
}

func newLot(cars, bikes int) *lot {
	spots := newMemorySpotStore(cars, bikes)
	tickets := newMemoryTicketStore()
	return &lot{
		spots:   spots,
		tickets: tickets,
		service: service.NewParkingService(spots, tickets, fare.Default()),
	}
}

func TestAdmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - lowest free spot of the category", func(t *testing.T) {
		l := newLot(3, 2)

		car, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		assert.Equal(t, 1, car.SpotID)
		assert.Equal(t, model.VehicleCategoryCar, car.Category)
		assert.NotEqual(t, uuid.Nil, car.TicketNumber)
		assert.False(t, l.spots.isAvailable(1))

		bike, err := l.service.Admit(ctx, "BIKE-1", model.VehicleCategoryBike, entry)
		require.NoError(t, err)
		assert.Equal(t, 4, bike.SpotID)

		ticket, err := l.tickets.GetOpenTicket(ctx, "ABC-123")
		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusOpen, ticket.Status())
		assert.Equal(t, 0.0, ticket.Price)
		assert.True(t, entry.Equal(ticket.InTime))
	})

	t.Run("Success - registration is case sensitive", func(t *testing.T) {
		l := newLot(2, 0)

		lower, err := l.service.Admit(ctx, "  abc123 ", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		assert.Equal(t, "abc123", lower.VehicleRegNumber)

		upper, err := l.service.Admit(ctx, "ABC123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		assert.Equal(t, "ABC123", upper.VehicleRegNumber)
		assert.NotEqual(t, lower.SpotID, upper.SpotID)

		_, err = l.service.Admit(ctx, "abc123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyParked)

		released, err := l.service.Release(ctx, "ABC123", entry.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, upper.TicketNumber, released.TicketNumber)

		history, err := l.service.History(ctx, "abc123")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, lower.TicketNumber, history[0].TicketNumber)
		assert.True(t, history[0].IsOpen())
	})

	t.Run("Failed - already parked consumes no spot", func(t *testing.T) {
		l := newLot(3, 0)
		_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)

		_, err = l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry.Add(time.Minute))
		assert.ErrorIs(t, err, apperrors.ErrAlreadyParked)
		assert.True(t, l.spots.isAvailable(2))
		assert.True(t, l.spots.isAvailable(3))
	})

	t.Run("Failed - lot full", func(t *testing.T) {
		l := newLot(1, 1)
		_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)

		_, err = l.service.Admit(ctx, "XYZ-789", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrLotFull)

		// 其他車種不受影響
		_, err = l.service.Admit(ctx, "BIKE-1", model.VehicleCategoryBike, entry)
		assert.NoError(t, err)
	})

	t.Run("Failed - input validation", func(t *testing.T) {
		l := newLot(1, 1)

		_, err := l.service.Admit(ctx, "ABC-123", "", entry)
		assert.ErrorIs(t, err, apperrors.ErrMissingCategory)

		_, err = l.service.Admit(ctx, "ABC-123", "BUS", entry)
		assert.ErrorIs(t, err, apperrors.ErrUnknownCategory)

		_, err = l.service.Admit(ctx, "   ", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = l.service.Admit(ctx, strings.Repeat("A", model.MaxVehicleRegNumberLength+1), model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = l.service.Release(ctx, strings.Repeat("A", model.MaxVehicleRegNumberLength+1), entry)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, time.Time{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		assert.Equal(t, 0, l.tickets.writeCount())
		assert.True(t, l.spots.isAvailable(1))
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		category model.VehicleCategory
		stay     time.Duration
		want     float64
	}{
		{"car one hour", model.VehicleCategoryCar, time.Hour, 1.5},
		{"bike one hour", model.VehicleCategoryBike, time.Hour, 1.0},
		{"car 45 minutes", model.VehicleCategoryCar, 45 * time.Minute, 1.13},
		{"bike 45 minutes", model.VehicleCategoryBike, 45 * time.Minute, 0.75},
		{"car 24 hours", model.VehicleCategoryCar, 24 * time.Hour, 36},
		{"car under 30 minutes is free", model.VehicleCategoryCar, 29 * time.Minute, 0},
		{"bike under 30 minutes is free", model.VehicleCategoryBike, 10 * time.Minute, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLot(3, 2)
			admitted, err := l.service.Admit(ctx, "REG-1", tc.category, entry)
			require.NoError(t, err)

			res, err := l.service.Release(ctx, "REG-1", entry.Add(tc.stay))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Price)
			assert.False(t, res.Recurring)
			assert.Equal(t, admitted.SpotID, res.SpotID)
			assert.Equal(t, admitted.TicketNumber, res.TicketNumber)
			assert.True(t, l.spots.isAvailable(admitted.SpotID))

			ticket, err := l.tickets.FindByTicketNumber(ctx, res.TicketNumber)
			require.NoError(t, err)
			assert.Equal(t, model.TicketStatusClosed, ticket.Status())
			assert.Equal(t, tc.want, ticket.Price)
		})
	}

	t.Run("Success - recurring user gets discount", func(t *testing.T) {
		l := newLot(3, 2)
		_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		_, err = l.service.Release(ctx, "ABC-123", entry.Add(time.Hour))
		require.NoError(t, err)

		second := entry.Add(2 * time.Hour)
		_, err = l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, second)
		require.NoError(t, err)
		res, err := l.service.Release(ctx, "ABC-123", second.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, res.Recurring)
		assert.Equal(t, 1.43, res.Price)
	})

	t.Run("Success - freed spot is reused", func(t *testing.T) {
		l := newLot(1, 0)
		_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		_, err = l.service.Release(ctx, "ABC-123", entry.Add(time.Hour))
		require.NoError(t, err)

		res, err := l.service.Admit(ctx, "XYZ-789", model.VehicleCategoryCar, entry.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, res.SpotID)
	})

	t.Run("Failed - not parked performs no writes", func(t *testing.T) {
		l := newLot(1, 0)
		_, err := l.service.Release(ctx, "GHOST-1", entry)
		assert.ErrorIs(t, err, apperrors.ErrNotParked)
		assert.Equal(t, 0, l.tickets.writeCount())
	})

	t.Run("Failed - released twice", func(t *testing.T) {
		l := newLot(1, 0)
		_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		_, err = l.service.Release(ctx, "ABC-123", entry.Add(time.Hour))
		require.NoError(t, err)

		_, err = l.service.Release(ctx, "ABC-123", entry.Add(2*time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrNotParked)
	})

	t.Run("Failed - exit before entry leaves ticket open", func(t *testing.T) {
		l := newLot(1, 0)
		_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		writes := l.tickets.writeCount()

		_, err = l.service.Release(ctx, "ABC-123", entry.Add(-time.Minute))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInterval)
		assert.Equal(t, writes, l.tickets.writeCount())
		assert.False(t, l.spots.isAvailable(1))

		_, err = l.tickets.GetOpenTicket(ctx, "ABC-123")
		assert.NoError(t, err)
	})
}

func TestAdmit_Concurrent(t *testing.T) {
	l := newLot(3, 2)
	const vehicles = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		spotIDs []int
		full    int
	)
	for i := 0; i < vehicles; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := l.service.Admit(context.Background(), fmt.Sprintf("CAR-%02d", i), model.VehicleCategoryCar, entry)
			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, apperrors.ErrLotFull) {
				full++
				return
			}
			if assert.NoError(t, err) {
				spotIDs = append(spotIDs, res.SpotID)
			}
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{1, 2, 3}, spotIDs)
	assert.Equal(t, vehicles-3, full)
}

func TestAdmit_ConcurrentSameVehicle(t *testing.T) {
	// 車位數大於併發數，失敗只會來自重複停車
	l := newLot(5, 0)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.service.Admit(context.Background(), "ABC-123", model.VehicleCategoryCar, entry)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			// 先檢查到已停車，或插入時撞到唯一性約束後歸還車位
			assert.ErrorIs(t, err, apperrors.ErrAlreadyParked)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	stats, err := l.service.Availability(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats[0].Available)
}

func TestAvailabilityAndHistory(t *testing.T) {
	ctx := context.Background()
	l := newLot(3, 2)

	_, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
	require.NoError(t, err)
	_, err = l.service.Release(ctx, "ABC-123", entry.Add(time.Hour))
	require.NoError(t, err)
	admitted, err := l.service.Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry.Add(2*time.Hour))
	require.NoError(t, err)

	stats, err := l.service.Availability(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.SpotAvailability{
		{Category: model.VehicleCategoryCar, Total: 3, Available: 2},
		{Category: model.VehicleCategoryBike, Total: 2, Available: 2},
	}, stats)

	history, err := l.service.History(ctx, " ABC-123 ")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.TicketStatusOpen, history[0].Status())
	assert.Equal(t, model.TicketStatusClosed, history[1].Status())

	ticket, err := l.service.GetTicket(ctx, admitted.TicketNumber)
	require.NoError(t, err)
	assert.Equal(t, admitted.SpotID, ticket.Spot.ID)

	_, err = l.service.GetTicket(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}

func TestAdmit_StoreFailures(t *testing.T) {
	ctx := context.Background()
	dbDown := errors.New("connection refused")

	t.Run("Lost race retries next spot", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, apperrors.ErrTicketNotFound).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(1, nil).Once()
		spots.EXPECT().SetAvailability(ctx, 1, false).Return(false, nil).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(2, nil).Once()
		spots.EXPECT().SetAvailability(ctx, 2, false).Return(true, nil).Once()
		tickets.EXPECT().Insert(ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
			return tk.Spot.ID == 2 && tk.IsOpen() && tk.Price == 0
		})).RunAndReturn(func(_ context.Context, tk *model.Ticket) (*model.Ticket, error) {
			tk.TicketNumber = uuid.New()
			return tk, nil
		}).Once()

		res, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		require.NoError(t, err)
		assert.Equal(t, 2, res.SpotID)
	})

	t.Run("Lost race on every attempt reports lot full", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, apperrors.ErrTicketNotFound).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(1, nil).Times(3)
		spots.EXPECT().SetAvailability(ctx, 1, false).Return(false, nil).Times(3)

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrLotFull)
	})

	t.Run("Lookup failure is store unavailable", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, dbDown).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, err, dbDown)
	})

	t.Run("Claim failure is store unavailable", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, apperrors.ErrTicketNotFound).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(1, nil).Once()
		spots.EXPECT().SetAvailability(ctx, 1, false).Return(false, dbDown).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("Insert failure returns the spot", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, apperrors.ErrTicketNotFound).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(1, nil).Once()
		spots.EXPECT().SetAvailability(ctx, 1, false).Return(true, nil).Once()
		tickets.EXPECT().Insert(ctx, mock.Anything).Return(nil, dbDown).Once()
		spots.EXPECT().SetAvailability(mock.Anything, 1, true).Return(true, nil).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrAdmissionAborted)
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, err, dbDown)
	})

	t.Run("Insert conflict returns the spot", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, apperrors.ErrTicketNotFound).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(1, nil).Once()
		spots.EXPECT().SetAvailability(ctx, 1, false).Return(true, nil).Once()
		tickets.EXPECT().Insert(ctx, mock.Anything).Return(nil, apperrors.ErrAlreadyParked).Once()
		spots.EXPECT().SetAvailability(mock.Anything, 1, true).Return(true, nil).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrAdmissionAborted)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyParked)
		assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("Failed compensation joins both errors", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)
		releaseErr := errors.New("spot release timeout")

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(nil, apperrors.ErrTicketNotFound).Once()
		spots.EXPECT().NextAvailable(ctx, model.VehicleCategoryCar).Return(1, nil).Once()
		spots.EXPECT().SetAvailability(ctx, 1, false).Return(true, nil).Once()
		tickets.EXPECT().Insert(ctx, mock.Anything).Return(nil, dbDown).Once()
		spots.EXPECT().SetAvailability(mock.Anything, 1, true).Return(false, releaseErr).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Admit(ctx, "ABC-123", model.VehicleCategoryCar, entry)
		assert.ErrorIs(t, err, apperrors.ErrAdmissionAborted)
		assert.ErrorIs(t, err, dbDown)
		assert.ErrorIs(t, err, releaseErr)
	})
}

func TestRelease_StoreFailures(t *testing.T) {
	ctx := context.Background()
	dbDown := errors.New("connection refused")
	open := func() *model.Ticket {
		return &model.Ticket{
			ID:               7,
			TicketNumber:     uuid.New(),
			VehicleRegNumber: "ABC-123",
			Spot:             model.ParkingSpot{ID: 2, Category: model.VehicleCategoryCar},
			InTime:           entry,
		}
	}

	t.Run("Update not applied leaves spot untouched", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(open(), nil).Once()
		tickets.EXPECT().HasPriorClosedTicket(ctx, "ABC-123").Return(false, nil).Once()
		tickets.EXPECT().Update(ctx, mock.MatchedBy(func(tk *model.Ticket) bool {
			return !tk.IsOpen() && tk.Price == 1.5
		})).Return(false, nil).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Release(ctx, "ABC-123", entry.Add(time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrUpdateFailed)
		spots.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Update failure is store unavailable", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(open(), nil).Once()
		tickets.EXPECT().HasPriorClosedTicket(ctx, "ABC-123").Return(true, nil).Once()
		tickets.EXPECT().Update(ctx, mock.Anything).Return(false, dbDown).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Release(ctx, "ABC-123", entry.Add(time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("Spot release failure is store unavailable", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(open(), nil).Once()
		tickets.EXPECT().HasPriorClosedTicket(ctx, "ABC-123").Return(false, nil).Once()
		tickets.EXPECT().Update(ctx, mock.Anything).Return(true, nil).Once()
		spots.EXPECT().SetAvailability(mock.Anything, 2, true).Return(false, dbDown).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Release(ctx, "ABC-123", entry.Add(time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, err, dbDown)
	})

	t.Run("Missing spot is reported as not found", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(open(), nil).Once()
		tickets.EXPECT().HasPriorClosedTicket(ctx, "ABC-123").Return(false, nil).Once()
		tickets.EXPECT().Update(ctx, mock.Anything).Return(true, nil).Once()
		spots.EXPECT().SetAvailability(mock.Anything, 2, true).Return(false, apperrors.ErrSpotNotFound).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Release(ctx, "ABC-123", entry.Add(time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrSpotNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("Recurring lookup failure stops before any write", func(t *testing.T) {
		spots := mocks.NewMockParkingSpotRepository(t)
		tickets := mocks.NewMockTicketRepository(t)

		tickets.EXPECT().GetOpenTicket(ctx, "ABC-123").Return(open(), nil).Once()
		tickets.EXPECT().HasPriorClosedTicket(ctx, "ABC-123").Return(false, dbDown).Once()

		_, err := service.NewParkingService(spots, tickets, fare.Default()).Release(ctx, "ABC-123", entry.Add(time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})
}
