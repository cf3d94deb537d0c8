package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewCounterVec creates and registers a labeled counter on the registry.
func (m *Metrics) NewCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.Registry.MustRegister(vec)
	return vec
}

// NewHistogramVec creates and registers a labeled histogram with the
// given buckets. Nil buckets use the Prometheus defaults.
func (m *Metrics) NewHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
	m.Registry.MustRegister(vec)
	return vec
}

// NewGaugeVec creates and registers a labeled gauge on the registry.
func (m *Metrics) NewGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	vec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
	m.Registry.MustRegister(vec)
	return vec
}
