package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-gin-parking/internal/model"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// 同一車牌只能有一張未出場票券 (partial unique index)
const openTicketConstraint = "ticket_open_vehicle_idx"

const uniqueViolation = "23505"

// TicketRepository 停車票存取 (Ticket Store)
type TicketRepository interface {
	// 取得車牌目前未出場的票券，沒有則回傳 ErrTicketNotFound
	GetOpenTicket(ctx context.Context, vehicleRegNumber string) (*model.Ticket, error)
	// 是否有已出場的歷史票券 (常客判斷)
	HasPriorClosedTicket(ctx context.Context, vehicleRegNumber string) (bool, error)
	// 新增票券；車牌已有未出場票券時回傳 ErrAlreadyParked
	Insert(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	// 結案票券；僅在票券仍未出場時生效
	Update(ctx context.Context, ticket *model.Ticket) (bool, error)
	FindByTicketNumber(ctx context.Context, ticketNumber uuid.UUID) (*model.Ticket, error)
	ListByRegistration(ctx context.Context, vehicleRegNumber string) ([]*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `
	t.id, t.ticket_number, t.vehicle_reg_number, t.price, t.in_time, t.out_time,
	t.created_at, t.updated_at, p.id, p.category, p.available
`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.VehicleRegNumber,
		&ticket.Price,
		&ticket.InTime,
		&ticket.OutTime,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.Spot.ID,
		&ticket.Spot.Category,
		&ticket.Spot.Available,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) GetOpenTicket(ctx context.Context, vehicleRegNumber string) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM ticket t
		JOIN parking_spot p ON p.id = t.parking_spot_id
		WHERE t.vehicle_reg_number = $1 AND t.out_time IS NULL
	`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, vehicleRegNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) HasPriorClosedTicket(ctx context.Context, vehicleRegNumber string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ticket
			WHERE vehicle_reg_number = $1 AND out_time IS NOT NULL
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, vehicleRegNumber).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *TicketRepositoryImpl) Insert(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO ticket (
			ticket_number, parking_spot_id, vehicle_reg_number, price, in_time, out_time
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	if ticket.TicketNumber == uuid.Nil {
		ticket.TicketNumber = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		ticket.TicketNumber, ticket.Spot.ID, ticket.VehicleRegNumber,
		ticket.Price, ticket.InTime, ticket.OutTime,
	).Scan(
		&ticket.ID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == openTicketConstraint {
			return nil, apperrors.ErrAlreadyParked
		}
		return nil, fmt.Errorf("failed to insert ticket: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, ticket *model.Ticket) (bool, error) {
	query := `
		UPDATE ticket
		SET price = $1, out_time = $2, updated_at = $3
		WHERE id = $4 AND out_time IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, ticket.Price, ticket.OutTime, now, ticket.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update ticket: %w", err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	ticket.UpdatedAt = now
	return true, nil
}

func (r *TicketRepositoryImpl) FindByTicketNumber(ctx context.Context, ticketNumber uuid.UUID) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM ticket t
		JOIN parking_spot p ON p.id = t.parking_spot_id
		WHERE t.ticket_number = $1
	`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, ticketNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) ListByRegistration(ctx context.Context, vehicleRegNumber string) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM ticket t
		JOIN parking_spot p ON p.id = t.parking_spot_id
		WHERE t.vehicle_reg_number = $1
		ORDER BY t.in_time DESC
	`

	rows, err := r.pool.Query(ctx, query, vehicleRegNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
