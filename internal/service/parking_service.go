package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go-gin-parking/internal/fare"
	"go-gin-parking/internal/model"
	"go-gin-parking/internal/repository"
	apperrors "go-gin-parking/pkg/app_errors"
	"go-gin-parking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 佔位 compare-and-set 失敗時重新挑選車位的次數上限
const maxAllocationAttempts = 3

type ParkingService interface {
	// 進場：配置車位並開立票券
	Admit(ctx context.Context, vehicleRegNumber string, category model.VehicleCategory, inTime time.Time) (*model.AdmitResult, error)
	// 出場：計費、結案票券並釋放車位
	Release(ctx context.Context, vehicleRegNumber string, outTime time.Time) (*model.ReleaseResult, error)
	Availability(ctx context.Context) ([]model.SpotAvailability, error)
	History(ctx context.Context, vehicleRegNumber string) ([]*model.Ticket, error)
	GetTicket(ctx context.Context, ticketNumber uuid.UUID) (*model.Ticket, error)
}

type ParkingServiceImpl struct {
	spots      repository.ParkingSpotRepository
	tickets    repository.TicketRepository
	calculator fare.Calculator
}

func NewParkingService(
	spots repository.ParkingSpotRepository,
	tickets repository.TicketRepository,
	calculator fare.Calculator,
) ParkingService {
	return &ParkingServiceImpl{
		spots:      spots,
		tickets:    tickets,
		calculator: calculator,
	}
}

func (s *ParkingServiceImpl) Admit(ctx context.Context, vehicleRegNumber string, category model.VehicleCategory, inTime time.Time) (*model.AdmitResult, error) {
	reg, err := normalizeRegistration(vehicleRegNumber)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, apperrors.ErrMissingCategory
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, string(category))
	}
	if inTime.IsZero() {
		return nil, fmt.Errorf("%w: entry time is required", apperrors.ErrInvalidInput)
	}

	// 1. 同一車牌不可同時有兩張未結案票券
	open, err := s.tickets.GetOpenTicket(ctx, reg)
	if err == nil {
		return nil, fmt.Errorf("%w: %s on spot %d", apperrors.ErrAlreadyParked, reg, open.Spot.ID)
	}
	if !errors.Is(err, apperrors.ErrTicketNotFound) {
		return nil, storeError(err)
	}

	// 2. 搶車位
	spotID, err := s.claimSpot(ctx, category)
	if err != nil {
		return nil, err
	}

	// 3. 開票；失敗時歸還車位
	ticket := &model.Ticket{
		VehicleRegNumber: reg,
		Spot:             model.ParkingSpot{ID: spotID, Category: category, Available: false},
		InTime:           inTime,
	}
	created, err := s.tickets.Insert(ctx, ticket)
	if err != nil {
		return nil, s.abortAdmission(spotID, err)
	}

	return &model.AdmitResult{
		TicketNumber:     created.TicketNumber,
		VehicleRegNumber: created.VehicleRegNumber,
		SpotID:           spotID,
		Category:         category,
		InTime:           created.InTime,
	}, nil
}

// claimSpot 取得最小編號空位並佔用；被其他入口搶走時重新挑選
func (s *ParkingServiceImpl) claimSpot(ctx context.Context, category model.VehicleCategory) (int, error) {
	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		spotID, err := s.spots.NextAvailable(ctx, category)
		if errors.Is(err, apperrors.ErrLotFull) {
			return 0, fmt.Errorf("%w: category %s", apperrors.ErrLotFull, category)
		}
		if err != nil {
			return 0, storeError(err)
		}

		applied, err := s.spots.SetAvailability(ctx, spotID, false)
		if err != nil {
			return 0, storeError(err)
		}
		if applied {
			return spotID, nil
		}
		logger.WithComponent("service").Debug("spot taken by another terminal, retrying",
			zap.Int("spot_id", spotID),
			zap.Int("attempt", attempt))
	}
	return 0, fmt.Errorf("%w: category %s contended after %d attempts", apperrors.ErrLotFull, category, maxAllocationAttempts)
}

// abortAdmission 開票失敗後把已佔用的車位還回去
func (s *ParkingServiceImpl) abortAdmission(spotID int, cause error) error {
	if !errors.Is(cause, apperrors.ErrAlreadyParked) {
		cause = storeError(cause)
	}
	aborted := fmt.Errorf("%w: %w", apperrors.ErrAdmissionAborted, cause)

	// 使用context.Background()確保請求取消後仍會歸還車位
	if _, err := s.spots.SetAvailability(context.Background(), spotID, true); err != nil {
		logger.WithComponent("service").Error("failed to return spot after aborted admission",
			zap.Int("spot_id", spotID),
			zap.Error(err))
		return errors.Join(aborted, fmt.Errorf("return spot %d: %w", spotID, storeError(err)))
	}
	return aborted
}

func (s *ParkingServiceImpl) Release(ctx context.Context, vehicleRegNumber string, outTime time.Time) (*model.ReleaseResult, error) {
	reg, err := normalizeRegistration(vehicleRegNumber)
	if err != nil {
		return nil, err
	}
	if outTime.IsZero() {
		return nil, apperrors.ErrInvalidInterval
	}

	ticket, err := s.tickets.GetOpenTicket(ctx, reg)
	if errors.Is(err, apperrors.ErrTicketNotFound) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotParked, reg)
	}
	if err != nil {
		return nil, storeError(err)
	}

	// 未結案的這張票不算，曾經出場過才是常客
	recurring, err := s.tickets.HasPriorClosedTicket(ctx, reg)
	if err != nil {
		return nil, storeError(err)
	}

	category := ticket.Spot.Category
	price, err := s.calculator.Calculate(ticket.InTime, &outTime, &category, recurring)
	if err != nil {
		return nil, err
	}

	ticket.Close(outTime, price)
	applied, err := s.tickets.Update(ctx, ticket)
	if err != nil {
		return nil, storeError(err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: ticket %s", apperrors.ErrUpdateFailed, ticket.TicketNumber)
	}

	// 票券已結案，請求取消也要把車位放回去
	if _, err := s.spots.SetAvailability(context.WithoutCancel(ctx), ticket.Spot.ID, true); err != nil {
		logger.WithComponent("service").Error("ticket closed but spot not freed",
			zap.String("ticket_number", ticket.TicketNumber.String()),
			zap.Int("spot_id", ticket.Spot.ID),
			zap.Error(err))
		return nil, fmt.Errorf("ticket %s closed but spot %d not freed: %w",
			ticket.TicketNumber, ticket.Spot.ID, storeError(err))
	}

	return &model.ReleaseResult{
		TicketNumber:     ticket.TicketNumber,
		VehicleRegNumber: ticket.VehicleRegNumber,
		SpotID:           ticket.Spot.ID,
		Category:         category,
		Price:            price,
		Recurring:        recurring,
		InTime:           ticket.InTime,
		OutTime:          outTime,
	}, nil
}

func (s *ParkingServiceImpl) Availability(ctx context.Context) ([]model.SpotAvailability, error) {
	stats, err := s.spots.Availability(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return stats, nil
}

func (s *ParkingServiceImpl) History(ctx context.Context, vehicleRegNumber string) ([]*model.Ticket, error) {
	reg, err := normalizeRegistration(vehicleRegNumber)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.ListByRegistration(ctx, reg)
	if err != nil {
		return nil, storeError(err)
	}
	return tickets, nil
}

func (s *ParkingServiceImpl) GetTicket(ctx context.Context, ticketNumber uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.tickets.FindByTicketNumber(ctx, ticketNumber)
	if errors.Is(err, apperrors.ErrTicketNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storeError(err)
	}
	return ticket, nil
}

// normalizeRegistration 只去除前後空白；車牌區分大小寫
func normalizeRegistration(vehicleRegNumber string) (string, error) {
	reg := strings.TrimSpace(vehicleRegNumber)
	if reg == "" {
		return "", fmt.Errorf("%w: vehicle registration number is required", apperrors.ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(reg); n > model.MaxVehicleRegNumberLength {
		return "", fmt.Errorf("%w: vehicle registration number has %d characters, at most %d allowed",
			apperrors.ErrInvalidInput, n, model.MaxVehicleRegNumberLength)
	}
	return reg, nil
}

// storeError 將 store 的 I/O 錯誤標記為 ErrStoreUnavailable，保留原始錯誤供 errors.Is 判斷；
// 車位不存在不是 I/O 錯誤，原樣回傳
func storeError(err error) error {
	if err == nil || errors.Is(err, apperrors.ErrStoreUnavailable) || errors.Is(err, apperrors.ErrSpotNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
}
