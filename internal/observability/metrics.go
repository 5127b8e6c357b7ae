package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReservationConflicts counts rejected reservation attempts by reason
	// (maintenance, duplicate, overlap, state).
	ReservationConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motorpool_reservation_conflicts_total",
		Help: "Total number of reservation attempts rejected by a business rule",
	}, []string{"reason"})

	// ReservationDecisions counts approve/reject outcomes.
	ReservationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motorpool_reservation_decisions_total",
		Help: "Total number of rental request adjudications by outcome",
	}, []string{"outcome"})

	// MaintenanceTransitions counts vehicle status changes by trigger
	// (threshold, override, completed).
	MaintenanceTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motorpool_maintenance_transitions_total",
		Help: "Total number of vehicle status transitions by trigger",
	}, []string{"trigger"})
)

// Conflict reasons recorded on ReservationConflicts.
const (
	ConflictMaintenance = "maintenance"
	ConflictDuplicate   = "duplicate"
	ConflictOverlap     = "overlap"
	ConflictState       = "state"
)
