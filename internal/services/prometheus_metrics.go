package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	uploadsTotal     *prometheus.CounterVec
	uploadFailures   *prometheus.CounterVec
	ingestDuration   prometheus.Histogram
	datasetsInMemory prometheus.Gauge
	lastUploadRows   prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		uploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claims_uploads_total",
				Help: "Total number of claims file uploads by format and status",
			},
			[]string{"format", "status"},
		),
		uploadFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claims_upload_failures_total",
				Help: "Total number of failed claims uploads by failure reason",
			},
			[]string{"reason"},
		),
		ingestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "claims_ingest_duration_seconds",
				Help:    "Time spent parsing and analyzing an uploaded claims file",
				Buckets: prometheus.DefBuckets,
			},
		),
		datasetsInMemory: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "datasets_in_memory",
				Help: "Current number of datasets held in memory",
			},
		),
		lastUploadRows: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "claims_last_upload_rows",
				Help: "Row count of the most recently ingested dataset",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	format := tags["format"]
	reason := tags["reason"]

	switch name {
	case "claims.upload.success":
		m.uploadsTotal.WithLabelValues(format, "success").Inc()
	case "claims.upload.failed":
		m.uploadsTotal.WithLabelValues(format, "failed").Inc()
		if reason != "" {
			m.uploadFailures.WithLabelValues(reason).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "claims.ingest":
		m.ingestDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "datasets.in_memory":
		m.datasetsInMemory.Set(value)
	case "claims.last_upload.rows":
		m.lastUploadRows.Set(value)
	}
}
