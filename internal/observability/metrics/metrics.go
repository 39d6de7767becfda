package metrics

import "github.com/prometheus/client_golang/prometheus"

// ConversationMetrics exposes counters/histograms for agent conversations.
type ConversationMetrics struct {
	turnsTotal           *prometheus.CounterVec
	turnLatency          *prometheus.HistogramVec
	recommendationsTotal prometheus.Counter
	leadsTotal           prometheus.Counter
}

func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realestate",
			Subsystem: "agent",
			Name:      "turns_total",
			Help:      "Total conversation turns processed",
		}, []string{"stage", "dialect"}),
		turnLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "realestate",
			Subsystem: "agent",
			Name:      "turn_latency_seconds",
			Help:      "Latency of one conversation turn",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		recommendationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "realestate",
			Subsystem: "agent",
			Name:      "recommendations_total",
			Help:      "Total turns that produced property recommendations",
		}),
		leadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "realestate",
			Subsystem: "agent",
			Name:      "leads_captured_total",
			Help:      "Total conversations that reached a confirmed contact",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.turnLatency, m.recommendationsTotal, m.leadsTotal)
	return m
}

// ObserveTurn records one processed turn with the stage it ended in.
func (m *ConversationMetrics) ObserveTurn(stage, dialect string, seconds float64) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(stage, dialect).Inc()
	m.turnLatency.WithLabelValues(stage).Observe(seconds)
}

func (m *ConversationMetrics) ObserveRecommendation() {
	if m == nil {
		return
	}
	m.recommendationsTotal.Inc()
}

func (m *ConversationMetrics) ObserveLeadCaptured() {
	if m == nil {
		return
	}
	m.leadsTotal.Inc()
}
