package metrics

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/LdDl/centroid-mot/mot"
)

func TestPrometheusCollectorRecordFrame(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	collector.RecordFrame(mot.FrameMetrics{LiveTracks: 3, Registered: 2, Deregistered: 1, Matched: 4, Gated: 1})
	collector.RecordFrame(mot.FrameMetrics{LiveTracks: 1, Registered: 1})

	require.Equal(t, 2.0, testutil.ToFloat64(collector.frames))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.liveTracks))
	require.Equal(t, 3.0, testutil.ToFloat64(collector.registered))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.deregistered))
	require.Equal(t, 4.0, testutil.ToFloat64(collector.matches))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.gated))
}

func TestPrometheusCollectorWithTracker(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "")

	cfg := mot.Config{MaxDisappeared: 5, MaxDistance: 50}
	tracker, err := mot.NewCentroidTracker(cfg, mot.WithMetrics(collector))
	require.NoError(t, err)

	tracker.Update([]mot.Detection{
		mot.NewDetectionAt(mot.NewPoint(10, 10)),
		mot.NewDetectionAt(mot.NewPoint(math.NaN(), 5)),
	})
	tracker.Update([]mot.Detection{
		mot.NewDetectionAt(mot.NewPoint(15, 12)),
		mot.NewDetection(mot.NewRect(0, 0, -1, 4)),
	})

	require.Equal(t, 2.0, testutil.ToFloat64(collector.frames))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.registered))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.matches))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.droppedDetections.WithLabelValues("non_finite")))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.droppedDetections.WithLabelValues("negative_extent")))
	require.Equal(t, 1, testutil.CollectAndCount(collector.matchDistance))

	names, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, family := range names {
		if family.GetName() == "mot_tracker_frames_total" {
			found = true
		}
	}
	require.True(t, found)
}

func TestPrometheusCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg, "dup")
	require.Panics(t, func() {
		NewPrometheus(reg, "dup")
	})
}
