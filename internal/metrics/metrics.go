package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passion_analyses_total",
			Help: "Total number of transcripts analyzed, by resulting archetype",
		},
		[]string{"archetype"},
	)

	PassionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "passion_score",
			Help:    "Distribution of computed passion scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	AnalysisCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passion_analysis_cache_total",
			Help: "Analysis cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
