package model

import (
	"time"

	"github.com/google/uuid"
)

// AdmitResult 進場成功結果
type AdmitResult struct {
	TicketNumber     uuid.UUID       `json:"ticket_number"`
	VehicleRegNumber string          `json:"vehicle_reg_number"`
	SpotID           int             `json:"spot_id"`
	Category         VehicleCategory `json:"category"`
	InTime           time.Time       `json:"in_time"`
}

// ReleaseResult 出場成功結果
type ReleaseResult struct {
	TicketNumber     uuid.UUID       `json:"ticket_number"`
	VehicleRegNumber string          `json:"vehicle_reg_number"`
	SpotID           int             `json:"spot_id"`
	Category         VehicleCategory `json:"category"`
	Price            float64         `json:"price"`
	Recurring        bool            `json:"recurring"`
	InTime           time.Time       `json:"in_time"`
	OutTime          time.Time       `json:"out_time"`
}

// AdmitRequest 進場請求；entry_time 省略時使用伺服器時間
type AdmitRequest struct {
	VehicleRegNumber string     `json:"vehicle_reg_number" binding:"required"`
	Category         string     `json:"category" binding:"required"`
	EntryTime        *time.Time `json:"entry_time"`
}

// ReleaseRequest 出場請求；exit_time 省略時使用伺服器時間
type ReleaseRequest struct {
	VehicleRegNumber string     `json:"vehicle_reg_number" binding:"required"`
	ExitTime         *time.Time `json:"exit_time"`
}
