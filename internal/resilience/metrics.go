package resilience

import "github.com/prometheus/client_golang/prometheus"

var (
	BreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "pos",
			Subsystem: "upstream",
			Name:      "breaker_state",
			Help:      "Current breaker state: 0=closed,1=open,2=half-open",
		},
		[]string{"target"},
	)
	BreakerTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "upstream",
			Name:      "breaker_transition_total",
			Help:      "Count of breaker state transitions",
		},
		[]string{"target", "from", "to"},
	)
	BreakerOpenedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "upstream",
			Name:      "breaker_open_total",
			Help:      "Number of times a breaker transitioned into open state",
		},
		[]string{"target"},
	)
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Store API requests by outcome",
		},
		[]string{"target", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(BreakerState, BreakerTransitions, BreakerOpenedTotal, RequestsTotal)
}
