package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Tickets issued per event",
		},
		[]string{"event_id"},
	)

	purchasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchases_opened_total",
			Help: "Purchase intents opened, by outcome",
		},
		[]string{"outcome"},
	)

	validationVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_verdicts_total",
			Help: "Gate validation verdicts by class",
		},
		[]string{"verdict"},
	)

	registryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_registration_outcomes_total",
			Help: "Registry registration attempts by outcome and failure category",
		},
		[]string{"outcome", "category"},
	)

	registryCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "registry_call_duration_seconds",
			Help:    "Duration of registry RPC calls",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)
)

func TicketIssued(eventID string, n int) {
	ticketsIssued.WithLabelValues(eventID).Add(float64(n))
}

func PurchaseOpened(outcome string) {
	purchasesOpened.WithLabelValues(outcome).Inc()
}

func VerdictRecorded(verdict string) {
	validationVerdicts.WithLabelValues(verdict).Inc()
}

func RegistryOutcome(outcome, category string) {
	registryOutcomes.WithLabelValues(outcome, category).Inc()
}

func ObserveRegistryCall(seconds float64) {
	registryCallDuration.Observe(seconds)
}
