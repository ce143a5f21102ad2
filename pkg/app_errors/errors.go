package apperrors

import "errors"

var (
	// parking lifecycle
	ErrAlreadyParked    = errors.New("vehicle already parked")
	ErrLotFull          = errors.New("no parking spot available")
	ErrNotParked        = errors.New("vehicle not parked")
	ErrUpdateFailed     = errors.New("ticket update did not apply")
	ErrAdmissionAborted = errors.New("admission aborted after spot allocation")

	// fare
	ErrInvalidInterval = errors.New("exit time is missing or before entry time")
	ErrUnknownCategory = errors.New("unknown vehicle category")
	ErrMissingCategory = errors.New("vehicle category is required")

	// stores
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrSpotNotFound     = errors.New("parking spot not found")
	ErrEventNotFound    = errors.New("parking event not found")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
