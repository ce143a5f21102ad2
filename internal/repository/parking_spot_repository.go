package repository

import (
	"context"
	"errors"

	"go-gin-parking/internal/model"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ParkingSpotRepository 車位存取 (Spot Store)
type ParkingSpotRepository interface {
	// 取得該車種編號最小的空車位，沒有空位回傳 ErrLotFull
	NextAvailable(ctx context.Context, category model.VehicleCategory) (int, error)
	// 切換車位可用狀態；佔用時僅在車位仍為空時生效 (applied=false 表示已被搶走)
	SetAvailability(ctx context.Context, spotID int, available bool) (bool, error)
	FindByID(ctx context.Context, spotID int) (*model.ParkingSpot, error)
	List(ctx context.Context, category *model.VehicleCategory) ([]*model.ParkingSpot, error)
	Availability(ctx context.Context) ([]model.SpotAvailability, error)
}

type ParkingSpotRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewParkingSpotRepository(pool *pgxpool.Pool) ParkingSpotRepository {
	return &ParkingSpotRepositoryImpl{
		pool: pool,
	}
}

func (r *ParkingSpotRepositoryImpl) NextAvailable(ctx context.Context, category model.VehicleCategory) (int, error) {
	query := `
		SELECT id
		FROM parking_spot
		WHERE category = $1 AND available = TRUE
		ORDER BY id
		LIMIT 1
	`

	var id int
	err := r.pool.QueryRow(ctx, query, category).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrLotFull
		}
		return 0, err
	}

	return id, nil
}

func (r *ParkingSpotRepositoryImpl) SetAvailability(ctx context.Context, spotID int, available bool) (bool, error) {
	// 佔用 (available=false) 必須是 compare-and-set，釋放則無條件
	query := `
		UPDATE parking_spot
		SET available = $1
		WHERE id = $2 AND ($1 OR available = TRUE)
	`

	result, err := r.pool.Exec(ctx, query, available, spotID)
	if err != nil {
		return false, err
	}

	if result.RowsAffected() == 0 {
		if available {
			return false, apperrors.ErrSpotNotFound
		}
		return false, nil
	}

	return true, nil
}

func (r *ParkingSpotRepositoryImpl) FindByID(ctx context.Context, spotID int) (*model.ParkingSpot, error) {
	query := `
		SELECT id, category, available
		FROM parking_spot
		WHERE id = $1
	`

	var spot model.ParkingSpot
	err := r.pool.QueryRow(ctx, query, spotID).Scan(
		&spot.ID,
		&spot.Category,
		&spot.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}

	return &spot, nil
}

func (r *ParkingSpotRepositoryImpl) List(ctx context.Context, category *model.VehicleCategory) ([]*model.ParkingSpot, error) {
	query := `
		SELECT id, category, available
		FROM parking_spot
		WHERE ($1::text IS NULL OR category = $1)
		ORDER BY id
	`

	var arg *string
	if category != nil {
		c := string(*category)
		arg = &c
	}

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spots := make([]*model.ParkingSpot, 0)
	for rows.Next() {
		var spot model.ParkingSpot
		err := rows.Scan(
			&spot.ID,
			&spot.Category,
			&spot.Available,
		)
		if err != nil {
			return nil, err
		}
		spots = append(spots, &spot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return spots, nil
}

func (r *ParkingSpotRepositoryImpl) Availability(ctx context.Context) ([]model.SpotAvailability, error) {
	query := `
		SELECT category, COUNT(*), COUNT(*) FILTER (WHERE available)
		FROM parking_spot
		GROUP BY category
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]model.SpotAvailability, 0)
	for rows.Next() {
		var s model.SpotAvailability
		if err := rows.Scan(&s.Category, &s.Total, &s.Available); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
