package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "feedback_dashboard"

var (
	datasetLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset loads partitioned by origin and outcome.",
		},
		[]string{"origin", "outcome"},
	)

	datasetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Number of feedback records in the dataset currently shown.",
		},
	)

	sentimentRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sentiment_records",
			Help:      "Records per sentiment label in the dataset currently shown.",
		},
		[]string{"label"},
	)

	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Ad-hoc text analyses partitioned by assigned label.",
		},
		[]string{"label"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register attaches the dashboard collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		datasetLoadsTotal,
		datasetRecords,
		sentimentRecords,
		analysesTotal,
		httpRequestDuration,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveDatasetLoad counts a dataset load attempt.
func ObserveDatasetLoad(origin, outcome string) {
	datasetLoadsTotal.WithLabelValues(origin, outcome).Inc()
}

// SetDataset publishes the record count and per-label tally of the dataset being shown.
func SetDataset(records int, tally map[string]int) {
	datasetRecords.Set(float64(records))
	sentimentRecords.Reset()
	for label, count := range tally {
		sentimentRecords.WithLabelValues(label).Set(float64(count))
	}
}

// ObserveAnalysis counts one analyzer call.
func ObserveAnalysis(label string) {
	analysesTotal.WithLabelValues(label).Inc()
}

// ObserveRequest records an HTTP request duration.
func ObserveRequest(method, route string, status int, duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
