package repository

import (
	"context"

	"go-gin-parking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ParkingEventRepository 停車事件稽核紀錄
type ParkingEventRepository interface {
	// 寫入事件；同一 event_id 重送時不重複寫入
	Create(ctx context.Context, event *model.ParkingEvent) error
	List(ctx context.Context, limit int) ([]*model.ParkingEvent, error)
	ListByRegistration(ctx context.Context, vehicleRegNumber string) ([]*model.ParkingEvent, error)
}

type ParkingEventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewParkingEventRepository(pool *pgxpool.Pool) ParkingEventRepository {
	return &ParkingEventRepositoryImpl{
		pool: pool,
	}
}

const parkingEventColumns = `
	id, event_id, kind, ticket_number, vehicle_reg_number, spot_id, category,
	price, occurred_at, created_at
`

func (r *ParkingEventRepositoryImpl) Create(ctx context.Context, event *model.ParkingEvent) error {
	query := `
		INSERT INTO parking_event (
			event_id, kind, ticket_number, vehicle_reg_number, spot_id, category, price, occurred_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query,
		event.EventID, event.Kind, event.TicketNumber, event.VehicleRegNumber,
		event.SpotID, event.Category, event.Price, event.OccurredAt,
	)
	return err
}

func (r *ParkingEventRepositoryImpl) List(ctx context.Context, limit int) ([]*model.ParkingEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT ` + parkingEventColumns + `
		FROM parking_event
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`

	return r.query(ctx, query, limit)
}

func (r *ParkingEventRepositoryImpl) ListByRegistration(ctx context.Context, vehicleRegNumber string) ([]*model.ParkingEvent, error) {
	query := `
		SELECT ` + parkingEventColumns + `
		FROM parking_event
		WHERE vehicle_reg_number = $1
		ORDER BY occurred_at DESC, id DESC
	`

	return r.query(ctx, query, vehicleRegNumber)
}

func (r *ParkingEventRepositoryImpl) query(ctx context.Context, query string, args ...interface{}) ([]*model.ParkingEvent, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.ParkingEvent, 0)
	for rows.Next() {
		var event model.ParkingEvent
		err := rows.Scan(
			&event.ID,
			&event.EventID,
			&event.Kind,
			&event.TicketNumber,
			&event.VehicleRegNumber,
			&event.SpotID,
			&event.Category,
			&event.Price,
			&event.OccurredAt,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
