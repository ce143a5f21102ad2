package model

import (
	"time"

	"github.com/google/uuid"
)

type ParkingEventKind string

const (
	ParkingEventAdmitted ParkingEventKind = "vehicle_admitted"
	ParkingEventReleased ParkingEventKind = "vehicle_released"
)

// ParkingEvent 停車生命週期事件，經由 queue 寫入稽核表
type ParkingEvent struct {
	ID               int              `json:"id" db:"id"`
	EventID          uuid.UUID        `json:"event_id" db:"event_id"`
	Kind             ParkingEventKind `json:"kind" db:"kind"`
	TicketNumber     uuid.UUID        `json:"ticket_number" db:"ticket_number"`
	VehicleRegNumber string           `json:"vehicle_reg_number" db:"vehicle_reg_number"`
	SpotID           int              `json:"spot_id" db:"spot_id"`
	Category         VehicleCategory  `json:"category" db:"category"`
	Price            float64          `json:"price" db:"price"`
	OccurredAt       time.Time        `json:"occurred_at" db:"occurred_at"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
}

func NewAdmittedEvent(r *AdmitResult) *ParkingEvent {
	return &ParkingEvent{
		EventID:          uuid.New(),
		Kind:             ParkingEventAdmitted,
		TicketNumber:     r.TicketNumber,
		VehicleRegNumber: r.VehicleRegNumber,
		SpotID:           r.SpotID,
		Category:         r.Category,
		OccurredAt:       r.InTime,
	}
}

func NewReleasedEvent(r *ReleaseResult) *ParkingEvent {
	return &ParkingEvent{
		EventID:          uuid.New(),
		Kind:             ParkingEventReleased,
		TicketNumber:     r.TicketNumber,
		VehicleRegNumber: r.VehicleRegNumber,
		SpotID:           r.SpotID,
		Category:         r.Category,
		Price:            r.Price,
		OccurredAt:       r.OutTime,
	}
}
