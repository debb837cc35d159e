// Package metrics provides Prometheus-backed mot.MetricsCollector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/LdDl/centroid-mot/mot"
)

// PrometheusCollector implements mot.MetricsCollector backed by Prometheus
type PrometheusCollector struct {
	frames            prometheus.Counter
	liveTracks        prometheus.Gauge
	registered        prometheus.Counter
	deregistered      prometheus.Counter
	matches           prometheus.Counter
	gated             prometheus.Counter
	droppedDetections *prometheus.CounterVec
	matchDistance     prometheus.Histogram
}

var _ mot.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates collector and registers its metrics.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace ("mot" if empty)
//
// Panics if metrics with the same names are already registered in reg, like prometheus.MustRegister does.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "mot"
	}
	p := &PrometheusCollector{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "frames_total",
			Help:      "Total frames processed.",
		}),
		liveTracks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "live_tracks",
			Help:      "Live tracks after the last processed frame.",
		}),
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "tracks_registered_total",
			Help:      "Total tracks registered.",
		}),
		deregistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "tracks_deregistered_total",
			Help:      "Total tracks removed after exceeding the disappearance limit.",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "matches_total",
			Help:      "Total track-detection pairs accepted by gating.",
		}),
		gated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "gated_total",
			Help:      "Total optimal pairs rejected for exceeding the distance threshold.",
		}),
		droppedDetections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "dropped_detections_total",
			Help:      "Total malformed detections dropped by reason.",
		}, []string{"reason"}),
		matchDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tracker",
			Name:      "match_distance_pixels",
			Help:      "Distance between a track and the detection matched to it.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
		}),
	}
	reg.MustRegister(
		p.frames,
		p.liveTracks,
		p.registered,
		p.deregistered,
		p.matches,
		p.gated,
		p.droppedDetections,
		p.matchDistance,
	)
	return p
}

// RecordFrame implements mot.MetricsCollector
func (p *PrometheusCollector) RecordFrame(frame mot.FrameMetrics) {
	p.frames.Inc()
	p.liveTracks.Set(float64(frame.LiveTracks))
	p.registered.Add(float64(frame.Registered))
	p.deregistered.Add(float64(frame.Deregistered))
	p.matches.Add(float64(frame.Matched))
	p.gated.Add(float64(frame.Gated))
}

// RecordDroppedDetection implements mot.MetricsCollector
func (p *PrometheusCollector) RecordDroppedDetection(reason string) {
	p.droppedDetections.WithLabelValues(reason).Inc()
}

// RecordMatchDistance implements mot.MetricsCollector
func (p *PrometheusCollector) RecordMatchDistance(distance float64) {
	p.matchDistance.Observe(distance)
}
