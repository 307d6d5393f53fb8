package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ranking Prometheus metrics.
var (
	ResumesRankedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hirelens",
			Name:      "resumes_ranked_total",
			Help:      "Total number of resumes scored and ranked",
		},
	)

	BiasFlagsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hirelens",
			Name:      "bias_flags_total",
			Help:      "Total number of candidates flagged for bias review",
		},
	)

	RankDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hirelens",
			Name:      "rank_duration_seconds",
			Help:      "Duration of a full ranking run in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)
)

var rankMetricsRegistered bool

// RegisterRankingMetrics registers Prometheus ranking metrics. Must be called once from main.
func RegisterRankingMetrics() {
	if rankMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResumesRankedTotal)
	prometheus.MustRegister(BiasFlagsTotal)
	prometheus.MustRegister(RankDuration)
	rankMetricsRegistered = true
}
