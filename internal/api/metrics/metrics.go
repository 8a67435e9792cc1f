// Package metrics defines the custom Prometheus metrics of the clinic API.
// Request-level HTTP metrics come from the echoprometheus middleware; the
// vectors here cover authorization and scheduling.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Authorization ─────────────────────────────────────────────────────────────

// AuthValidationsTotal counts gate decisions.
// Labels:
//   - role: the role the route asked for ("admin", "doctor", "patient")
//   - outcome: "valid" or the rejection reason (e.g. "expired", "no_matching_identity")
var AuthValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_validations_total",
		Help:      "Total number of token validations, by requested role and outcome.",
	},
	[]string{"role", "outcome"},
)

// LoginAttemptsTotal counts login requests.
// Labels:
//   - role: which identity store the login targets
//   - result: "success", "invalid_credentials", "rate_limited" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Scheduling ────────────────────────────────────────────────────────────────

// AppointmentsTotal counts appointment lifecycle operations.
// Label:
//   - action: "booked", "rescheduled", "cancelled", "completed"
var AppointmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_total",
		Help:      "Total number of appointment operations, by action.",
	},
	[]string{"action"},
)

// BookingConflictsTotal counts bookings refused because the slot was taken.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of bookings rejected because the slot was unavailable.",
	},
)

// AvailabilityDuration measures availability computation, including both store reads.
var AvailabilityDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "availability_duration_seconds",
		Help:      "Duration of doctor availability lookups.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Audit trail ───────────────────────────────────────────────────────────────

// AuditEventsDroppedTotal counts audit events dropped because a dispatcher
// shard was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of appointment audit events dropped on a full queue.",
	},
)

// RegisterAuditQueueDepth exposes the dispatcher backlog as a gauge. Call once.
func RegisterAuditQueueDepth(depth func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "audit_queue_depth",
			Help:      "Current number of appointment audit events waiting to be recorded.",
		},
		func() float64 { return float64(depth()) },
	)
}
