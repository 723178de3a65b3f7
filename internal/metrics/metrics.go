// Package metrics implements Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FramesTotal counts link-layer frames read from the capture source.
	FramesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cigiscope_frames_total",
			Help: "Total number of frames read from the capture source",
		},
	)

	// FramesSkippedTotal counts frames without a usable UDP payload.
	FramesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cigiscope_frames_skipped_total",
			Help: "Total number of frames skipped for lack of a UDP payload",
		},
	)

	// MessagesTotal counts dissected CIGI messages by negotiated version.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cigiscope_messages_total",
			Help: "Total number of messages dissected as CIGI",
		},
		[]string{"version"},
	)

	// MessagesDeclinedTotal counts UDP payloads that did not classify
	// as CIGI.
	MessagesDeclinedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cigiscope_messages_declined_total",
			Help: "Total number of UDP payloads declined by the classifier",
		},
	)

	// PacketsTotal counts decoded CIGI packets by display label.
	PacketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cigiscope_packets_total",
			Help: "Total number of CIGI packets decoded",
		},
		[]string{"packet"},
	)

	// FramingFaultsTotal counts messages whose walk stopped on a
	// framing fault.
	FramingFaultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cigiscope_framing_faults_total",
			Help: "Total number of messages with framing faults",
		},
	)

	// BytesTotal counts dissected CIGI payload bytes.
	BytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cigiscope_bytes_total",
			Help: "Total number of CIGI payload bytes dissected",
		},
	)
)
