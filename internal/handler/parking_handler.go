package handler

import (
	"net/http"
	"time"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/service"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParkingHandler struct {
	service service.ParkingService
	now     func() time.Time
}

func NewParkingHandler(service service.ParkingService) *ParkingHandler {
	return &ParkingHandler{service: service, now: time.Now}
}

func (h *ParkingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("parking/entries", h.Admit)
		router.POST("parking/exits", h.Release)
		router.GET("spots", h.GetAvailability)
		router.GET("tickets", h.GetTickets)
		router.GET("tickets/:ticket_number", h.GetTicket)
	}
}

func (h *ParkingHandler) Admit(c *gin.Context) {
	var req model.AdmitRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	category, err := model.ParseVehicleCategory(req.Category)
	if err != nil {
		handleError(c, err, "Admit")
		return
	}

	inTime := h.now()
	if req.EntryTime != nil {
		inTime = *req.EntryTime
	}

	result, err := h.service.Admit(c, req.VehicleRegNumber, category, inTime)
	if err != nil {
		handleError(c, err, "Admit")
		return
	}

	handleSuccess(c, result, http.StatusCreated)
}

func (h *ParkingHandler) Release(c *gin.Context) {
	var req model.ReleaseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	outTime := h.now()
	if req.ExitTime != nil {
		outTime = *req.ExitTime
	}

	result, err := h.service.Release(c, req.VehicleRegNumber, outTime)
	if err != nil {
		handleError(c, err, "Release")
		return
	}

	handleSuccess(c, result, http.StatusOK)
}

func (h *ParkingHandler) GetAvailability(c *gin.Context) {
	stats, err := h.service.Availability(c)
	if err != nil {
		handleError(c, err, "GetAvailability")
		return
	}

	handleSuccess(c, stats, http.StatusOK)
}

type ticketQuery struct {
	Registration string `form:"registration" binding:"required"`
}

func (h *ParkingHandler) GetTickets(c *gin.Context) {
	var query ticketQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	tickets, err := h.service.History(c, query.Registration)
	if err != nil {
		handleError(c, err, "GetTickets")
		return
	}

	resp := make([]model.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, t.ToResponse())
	}
	handleSuccess(c, resp, http.StatusOK)
}

func (h *ParkingHandler) GetTicket(c *gin.Context) {
	ticketNumber, err := uuid.Parse(c.Param("ticket_number"))
	if err != nil {
		handleError(c, apperrors.ErrInvalidInput, "GetTicket")
		return
	}

	ticket, err := h.service.GetTicket(c, ticketNumber)
	if err != nil {
		handleError(c, err, "GetTicket")
		return
	}

	handleSuccess(c, ticket.ToResponse(), http.StatusOK)
}
