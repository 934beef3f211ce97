package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	TransitionApplied = "applied"
	TransitionNoop    = "noop"
	TransitionRefused = "refused"
)

var ParcelTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "parcel_transitions_total",
		Help: "Total number of parcel lifecycle transitions by event and result",
	},
	[]string{"event", "result"},
)

// ObserveTransition modified=0 без ошибки считается повтором.
func ObserveTransition(event string, modified int64, err error) {
	result := TransitionApplied
	switch {
	case err != nil:
		result = TransitionRefused
	case modified == 0:
		result = TransitionNoop
	}
	ParcelTransitionsTotal.WithLabelValues(event, result).Inc()
}
