package handler

import (
	"errors"
	"net/http"

	apperrors "go-gin-parking/pkg/app_errors"
	"go-gin-parking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError 將 apperrors 對應到 HTTP 狀態碼
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	// AdmissionAborted 可能包著 AlreadyParked，需先判斷
	case errors.Is(err, apperrors.ErrAdmissionAborted):
		log.Error("Admission aborted")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Admission aborted, please retry",
		})
	case errors.Is(err, apperrors.ErrAlreadyParked):
		log.Warn("Vehicle already parked")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Vehicle already parked",
		})
	case errors.Is(err, apperrors.ErrLotFull):
		log.Warn("Lot full")
		c.JSON(http.StatusConflict, gin.H{
			"error": "No parking spot available",
		})
	case errors.Is(err, apperrors.ErrUpdateFailed):
		log.Warn("Ticket update did not apply")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Ticket was already closed",
		})
	case errors.Is(err, apperrors.ErrNotParked):
		log.Warn("Vehicle not parked")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not parked",
		})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ticket not found",
		})
	case errors.Is(err, apperrors.ErrSpotNotFound):
		log.Warn("Parking spot not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Parking spot not found",
		})
	case errors.Is(err, apperrors.ErrInvalidInterval):
		log.Warn("Invalid interval")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Exit time is before entry time",
		})
	case errors.Is(err, apperrors.ErrMissingCategory):
		log.Warn("Missing category")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Vehicle category is required",
		})
	case errors.Is(err, apperrors.ErrUnknownCategory):
		log.Warn("Unknown category")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown vehicle category",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		log.Error("Store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
