package handler

import (
	"net/http"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/service"

	"github.com/gin-gonic/gin"
)

type ParkingEventHandler struct {
	service service.ParkingEventService
}

func NewParkingEventHandler(service service.ParkingEventService) *ParkingEventHandler {
	return &ParkingEventHandler{service: service}
}

func (h *ParkingEventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.GetEvents)
	}
}

type eventQuery struct {
	Registration string `form:"registration"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

func (h *ParkingEventHandler) GetEvents(c *gin.Context) {
	var query eventQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	var (
		events []*model.ParkingEvent
		err    error
	)
	if query.Registration != "" {
		events, err = h.service.ListByRegistration(c, query.Registration)
	} else {
		events, err = h.service.List(c, query.Limit)
	}
	if err != nil {
		handleError(c, err, "GetEvents")
		return
	}

	if events == nil {
		events = []*model.ParkingEvent{}
	}
	handleSuccess(c, events, http.StatusOK)
}
