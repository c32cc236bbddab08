package core

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChungNYCU/jtcg-assignment/pkg/metrics"
)

type Metrics struct {
	searchTime       *prometheus.HistogramVec
	embeddingTime    *prometheus.HistogramVec
	capabilityErrors *prometheus.CounterVec
	agentToolCalls   *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		searchTime:       metrics.NewHistogramVec("search_time", []string{"collection"}),
		embeddingTime:    metrics.NewHistogramVec("embedding_time", []string{"scene"}),
		capabilityErrors: metrics.NewCounterVec("capability_error", []string{"capability", "kind"}),
		agentToolCalls:   metrics.NewCounterVec("agent_tool_call", []string{"tool"}),
	}

	return m
}

func (m *Metrics) SearchTimer(collection string) *prometheus.Timer {
	return prometheus.NewTimer(m.searchTime.WithLabelValues(collection))
}

func (m *Metrics) EmbeddingTimer(scene string) *prometheus.Timer {
	return prometheus.NewTimer(m.embeddingTime.WithLabelValues(scene))
}

func (m *Metrics) CapabilityErrorInc(capability, kind string) {
	m.capabilityErrors.WithLabelValues(capability, kind).Inc()
}

func (m *Metrics) AgentToolCallInc(tool string) {
	m.agentToolCalls.WithLabelValues(tool).Inc()
}
