package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/go-sml/message"
)

func newMetricsRegistry(m *message.DecodeMetrics) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "smldump_files_total",
			Help: "Number of SML files decoded",
		}, func() float64 { return float64(m.FileCount.Load()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "smldump_messages_total",
			Help: "Number of SML messages decoded",
		}, func() float64 { return float64(m.MessageCount.Load()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "smldump_message_bytes_total",
			Help: "Number of bytes of decoded SML messages",
		}, func() float64 { return float64(m.ByteCount.Load()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name:        "smldump_decode_errors_total",
			Help:        "Number of SML decode errors",
			ConstLabels: prometheus.Labels{"kind": "structural"},
		}, func() float64 { return float64(m.StructuralErrCount.Load()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name:        "smldump_decode_errors_total",
			Help:        "Number of SML decode errors",
			ConstLabels: prometheus.Labels{"kind": "numeric"},
		}, func() float64 { return float64(m.NumericErrCount.Load()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name:        "smldump_decode_errors_total",
			Help:        "Number of SML decode errors",
			ConstLabels: prometheus.Labels{"kind": "semantic"},
		}, func() float64 { return float64(m.SemanticErrCount.Load()) }),
	)

	return reg
}

// writeMetrics writes the decode counters to path in the Prometheus text
// format, for the node exporter textfile collector.
func writeMetrics(path string, m *message.DecodeMetrics) error {
	if err := prometheus.WriteToTextfile(path, newMetricsRegistry(m)); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
