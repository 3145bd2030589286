package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StarsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_stars_awarded_total",
		Help: "Total stars credited through the incentive ledger.",
	})

	BonusesGranted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_bonuses_granted_total",
		Help: "Total bonuses granted by threshold crossings.",
	})

	SessionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_work_session_transitions_total",
		Help: "Work session state transitions by action.",
	}, []string{"action"})
)
