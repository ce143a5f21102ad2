package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus 票券狀態，由 OutTime 推導，不落庫
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "OPEN"
	TicketStatusClosed TicketStatus = "CLOSED"
)

// MaxVehicleRegNumberLength 車牌長度上限 (字元數)，對應資料表 VARCHAR(32)
const MaxVehicleRegNumberLength = 32

// Ticket 停車票：一次停車從進場到出場的紀錄
type Ticket struct {
	ID               int         `json:"id" db:"id"`
	TicketNumber     uuid.UUID   `json:"ticket_number" db:"ticket_number"`
	VehicleRegNumber string      `json:"vehicle_reg_number" db:"vehicle_reg_number"`
	Spot             ParkingSpot `json:"spot" db:"-"`
	Price            float64     `json:"price" db:"price"`
	InTime           time.Time   `json:"in_time" db:"in_time"`
	OutTime          *time.Time  `json:"out_time,omitempty" db:"out_time"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

// IsOpen 車輛是否仍在場內
func (t *Ticket) IsOpen() bool {
	return t.OutTime == nil
}

// Status 回傳 OPEN / CLOSED
func (t *Ticket) Status() TicketStatus {
	if t.IsOpen() {
		return TicketStatusOpen
	}
	return TicketStatusClosed
}

// Close 設定出場時間與費用，票券轉為 CLOSED
func (t *Ticket) Close(outTime time.Time, price float64) {
	t.OutTime = &outTime
	t.Price = price
}

// TicketResponse 票券響應
type TicketResponse struct {
	TicketNumber     string          `json:"ticket_number"`
	VehicleRegNumber string          `json:"vehicle_reg_number"`
	SpotID           int             `json:"spot_id"`
	Category         VehicleCategory `json:"category"`
	Status           TicketStatus    `json:"status"`
	Price            float64         `json:"price"`
	InTime           time.Time       `json:"in_time"`
	OutTime          *time.Time      `json:"out_time,omitempty"`
}

func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		TicketNumber:     t.TicketNumber.String(),
		VehicleRegNumber: t.VehicleRegNumber,
		SpotID:           t.Spot.ID,
		Category:         t.Spot.Category,
		Status:           t.Status(),
		Price:            t.Price,
		InTime:           t.InTime,
		OutTime:          t.OutTime,
	}
}
