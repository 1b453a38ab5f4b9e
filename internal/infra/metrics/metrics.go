// Package metrics provides Prometheus metrics for daykeep: counters for
// engagement events, achievements, and the ledger/water record flows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Engagement ─────────────────────────────────────────────────────────────

// EventsRecorded tracks engagement events (taps) recorded.
var EventsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "daykeep",
	Name:      "events_recorded_total",
	Help:      "Total engagement events recorded.",
})

// AchievementsUnlocked tracks achievement unlocks by metric kind.
var AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "daykeep",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
}, []string{"metric"})

// ─── Budget ─────────────────────────────────────────────────────────────────

// LedgerEntries tracks ledger entries added, by type.
var LedgerEntries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "daykeep",
	Name:      "ledger_entries_total",
	Help:      "Total budget ledger entries added.",
}, []string{"type"})

// ─── Water ──────────────────────────────────────────────────────────────────

// WaterIntake tracks millilitres of water recorded.
var WaterIntake = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "daykeep",
	Name:      "water_intake_ml_total",
	Help:      "Total water intake recorded, in millilitres.",
})
