package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "appointments_created_total",
			Help:      "Count of appointments committed.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "booking_rejected_total",
			Help:      "Count of rejected booking attempts by error code.",
		},
		[]string{"code"},
	)

	bookingRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "booking_commit_retries_total",
			Help:      "Count of booking commits retried after a write conflict.",
		},
	)

	appointmentStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "appointment_status_changes_total",
			Help:      "Count of appointment status transitions by target status.",
		},
		[]string{"status"},
	)

	availabilityLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "salonbook",
			Name:      "availability_query_seconds",
			Help:      "Latency of slot availability queries.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// RegisterMetrics registers metrics (idempotent).
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			appointmentsCreated,
			bookingRejected,
			bookingRetries,
			appointmentStatus,
			availabilityLatency,
		)
	})
}

func IncAppointmentCreated() {
	appointmentsCreated.Inc()
}

func IncBookingRejected(code string) {
	bookingRejected.WithLabelValues(code).Inc()
}

func IncBookingRetry() {
	bookingRetries.Inc()
}

func IncAppointmentStatus(status string) {
	appointmentStatus.WithLabelValues(status).Inc()
}

func ObserveAvailabilityLatency(seconds float64) {
	availabilityLatency.Observe(seconds)
}
