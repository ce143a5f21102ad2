package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/service/mocks"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventTestRouter(mockService *mocks.MockParkingEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewParkingEventHandler(mockService).RegisterRoutes(router)
	return router
}

func TestGetEvents(t *testing.T) {
	t.Run("Success - latest", func(t *testing.T) {
		mockService := mocks.NewMockParkingEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, 20).Return([]*model.ParkingEvent{
			{EventID: uuid.New(), Kind: model.ParkingEventAdmitted, VehicleRegNumber: "ABC-123"},
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/events?limit=20", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []model.ParkingEvent
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("Success - by registration returns empty list", func(t *testing.T) {
		mockService := mocks.NewMockParkingEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().ListByRegistration(mock.Anything, "ZZZ-999").Return(nil, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/events?registration=ZZZ-999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Failed - limit out of range", func(t *testing.T) {
		mockService := mocks.NewMockParkingEventService(t)
		router := setupEventTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/api/v1/events?limit=5000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "List")
	})

	t.Run("Failed - ErrStoreUnavailable", func(t *testing.T) {
		mockService := mocks.NewMockParkingEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything, 0).Return(nil, apperrors.ErrStoreUnavailable).Once()

		req, _ := http.NewRequest("GET", "/api/v1/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
