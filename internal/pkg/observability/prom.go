package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "attritiond"
)

var (
	DatasetLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "dataset", "load_duration_seconds"),
		Help:    "Duration of dataset loading in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"scheme", "result"})
	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "dataset", "rows"),
		Help: "Number of employee records in the loaded dataset",
	})
	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "pipeline", "duration_seconds"),
		Help:    "Duration of a filter and aggregate pass in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"view"})
	PipelineFilteredRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "pipeline", "filtered_rows"),
		Help: "Number of records shown by the last filter pass",
	}, []string{"view"})
)
