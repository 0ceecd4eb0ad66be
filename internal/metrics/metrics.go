package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ClaimsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimsTotal,
			Help: HelpTextClaimsTotal,
		},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	ParticipantsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameParticipantsRegistered,
			Help: HelpTextParticipantsRegistered,
		},
	)
)
