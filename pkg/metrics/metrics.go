// Package metrics holds the Prometheus collectors for the assignment
// engine's caller-facing outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeForced   = "forced"
)

var (
	// AssignmentDecisions counts assignment attempts by outcome: accepted,
	// forced, or the rejection kind.
	AssignmentDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teamtree",
		Subsystem: "assignment",
		Name:      "decisions_total",
		Help:      "Assignment decisions by outcome.",
	}, []string{"outcome"})

	// ProjectDeletions counts cascade deletions and the subtree sizes they
	// covered.
	ProjectDeletions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teamtree",
		Subsystem: "projects",
		Name:      "deletions_total",
		Help:      "Completed hierarchical project deletions.",
	})

	// JanitorPrunedMemberships counts membership rows removed by the
	// consistency sweep.
	JanitorPrunedMemberships = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teamtree",
		Subsystem: "janitor",
		Name:      "pruned_memberships_total",
		Help:      "Orphaned membership rows removed by the janitor.",
	})
)
