package metrics

import (
	"context"
	"errors"
	"net/http"

	"go-gin-parking/internal/model"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OperationAdmit   = "admit"
	OperationRelease = "release"
)

const (
	ReasonAlreadyParked    = "already_parked"
	ReasonLotFull          = "lot_full"
	ReasonNotParked        = "not_parked"
	ReasonUpdateFailed     = "update_failed"
	ReasonAdmissionAborted = "admission_aborted"
	ReasonInvalidInput     = "invalid_input"
	ReasonStoreUnavailable = "store_unavailable"
	ReasonCanceled         = "canceled"
	ReasonUnknown          = "unknown"
)

// ParkingMetrics 停車場營運指標，使用獨立 registry 以便測試
type ParkingMetrics struct {
	registry       *prometheus.Registry
	admissions     *prometheus.CounterVec
	releases       *prometheus.CounterVec
	failures       *prometheus.CounterVec
	fares          *prometheus.HistogramVec
	availableSpots *prometheus.GaugeVec
	eventsPublish  *prometheus.CounterVec
	eventsAudited  *prometheus.CounterVec
}

func NewParkingMetrics() *ParkingMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newParkingMetrics(registry)
}

func newParkingMetrics(registry *prometheus.Registry) *ParkingMetrics {
	m := &ParkingMetrics{
		registry: registry,
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_admissions_total",
			Help: "Vehicles admitted by category.",
		}, []string{"category"}),
		releases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_releases_total",
			Help: "Vehicles released by category and recurring flag.",
		}, []string{"category", "recurring"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_operation_failures_total",
			Help: "Failed admit/release operations by low-cardinality reason.",
		}, []string{"operation", "reason"}),
		fares: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parking_fare_amount",
			Help:    "Charged fares by category.",
			Buckets: []float64{0, 0.5, 1, 1.5, 3, 6, 12, 24, 36, 72},
		}, []string{"category"}),
		availableSpots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "parking_available_spots",
			Help: "Free spots by category as last observed.",
		}, []string{"category"}),
		eventsPublish: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_events_published_total",
			Help: "Parking events handed to the queue by result.",
		}, []string{"result"}),
		eventsAudited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_events_audited_total",
			Help: "Parking events persisted by the audit worker by result.",
		}, []string{"result"}),
	}
	registry.MustRegister(
		m.admissions,
		m.releases,
		m.failures,
		m.fares,
		m.availableSpots,
		m.eventsPublish,
		m.eventsAudited,
	)
	return m
}

func (m *ParkingMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *ParkingMetrics) ObserveAdmission(category model.VehicleCategory) {
	m.admissions.WithLabelValues(string(category)).Inc()
}

func (m *ParkingMetrics) ObserveRelease(category model.VehicleCategory, recurring bool, price float64) {
	flag := "false"
	if recurring {
		flag = "true"
	}
	m.releases.WithLabelValues(string(category), flag).Inc()
	m.fares.WithLabelValues(string(category)).Observe(price)
}

func (m *ParkingMetrics) ObserveFailure(operation string, err error) {
	m.failures.WithLabelValues(operation, ClassifyReason(err)).Inc()
}

func (m *ParkingMetrics) SetAvailability(stats []model.SpotAvailability) {
	for _, s := range stats {
		m.availableSpots.WithLabelValues(string(s.Category)).Set(float64(s.Available))
	}
}

func (m *ParkingMetrics) ObservePublish(err error) {
	m.eventsPublish.WithLabelValues(result(err)).Inc()
}

func (m *ParkingMetrics) ObserveAudit(err error) {
	m.eventsAudited.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ClassifyReason 將錯誤對應到固定的 label 值，避免 label 爆量
func ClassifyReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	case errors.Is(err, apperrors.ErrAlreadyParked) && !errors.Is(err, apperrors.ErrAdmissionAborted):
		return ReasonAlreadyParked
	case errors.Is(err, apperrors.ErrAdmissionAborted):
		return ReasonAdmissionAborted
	case errors.Is(err, apperrors.ErrLotFull):
		return ReasonLotFull
	case errors.Is(err, apperrors.ErrNotParked):
		return ReasonNotParked
	case errors.Is(err, apperrors.ErrUpdateFailed):
		return ReasonUpdateFailed
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidInterval),
		errors.Is(err, apperrors.ErrUnknownCategory),
		errors.Is(err, apperrors.ErrMissingCategory):
		return ReasonInvalidInput
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return ReasonStoreUnavailable
	default:
		return ReasonUnknown
	}
}
