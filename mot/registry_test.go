package mot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry(2, 3)
	first := registry.Register(NewDetectionAt(NewPoint(1, 1)))
	second := registry.Register(NewDetectionAt(NewPoint(2, 2)))

	require.Equal(t, 0, first.GetID())
	require.Equal(t, 1, second.GetID())
	require.Equal(t, TrackStateNew, first.GetState())
	require.Equal(t, 0, first.GetDisappeared())
	require.Equal(t, 2, registry.Len())
	require.Equal(t, 2, registry.TotalRegistered())

	track, ok := registry.Get(1)
	require.True(t, ok)
	require.Same(t, second, track)
	_, ok = registry.Get(7)
	require.False(t, ok)
	_, ok = registry.Get(-1)
	require.False(t, ok)
}

func TestRegistryApplyOrder(t *testing.T) {
	registry := NewRegistry(1, 3)
	registry.Register(NewDetectionAt(NewPoint(0, 0)))
	registry.Register(NewDetectionAt(NewPoint(100, 100)))
	registry.Register(NewDetectionAt(NewPoint(200, 200)))
	// Track 2 already used its grace frame
	registry.tracks[2].incDisappeared()

	detections := []Detection{
		NewDetectionAt(NewPoint(1, 1)),
		NewDetectionAt(NewPoint(400, 400)),
	}
	result := GateResult{
		Matched:       []Pair{{Row: 0, Col: 0, Cost: 1.41}},
		UnmatchedRows: []int{1, 2},
		UnmatchedCols: []int{1},
	}
	transitions := registry.Apply(result, detections)

	require.Equal(t, []int{0}, transitions.Matched)
	require.Equal(t, []int{2}, transitions.Deregistered)
	require.Equal(t, []int{3}, transitions.Registered)
	require.Equal(t, map[int]int{0: 0, 3: 1}, transitions.Columns)

	tracks := registry.Tracks()
	require.Len(t, tracks, 3)
	require.Equal(t, 0, tracks[0].GetID())
	require.Equal(t, Point{X: 1, Y: 1}, tracks[0].GetCenter())
	require.Equal(t, TrackStateActive, tracks[0].GetState())
	require.Equal(t, 1, tracks[1].GetID())
	require.Equal(t, 1, tracks[1].GetDisappeared())
	require.Equal(t, TrackStateStale, tracks[1].GetState())
	require.Equal(t, 3, tracks[2].GetID())
	require.Equal(t, TrackStateNew, tracks[2].GetState())
	require.Equal(t, 4, registry.TotalRegistered())

	// Lookup across the gap left by the deregistered id
	_, ok := registry.Get(2)
	require.False(t, ok)
	track, ok := registry.Get(3)
	require.True(t, ok)
	require.Same(t, tracks[2], track)
}

func TestRegistryResetKeepsCounter(t *testing.T) {
	registry := NewRegistry(5, 3)
	track := registry.Register(NewDetectionAt(NewPoint(0, 0)))
	registry.Reset()
	require.Equal(t, 0, registry.Len())
	require.Equal(t, TrackStateDeregistered, track.GetState())
	require.Equal(t, 1, registry.Register(NewDetectionAt(NewPoint(0, 0))).GetID())
}

func TestTrackTrailBounded(t *testing.T) {
	track := newTrack(0, NewDetectionAt(NewPoint(0, 0)), 3)
	for i := 1; i <= 5; i++ {
		track.update(NewDetectionAt(NewPoint(float64(i), 0)))
	}
	require.Equal(t, []Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}}, track.GetTrack())
	require.Equal(t, 3, track.GetMaxTrackLen())
}

func TestTrackStateString(t *testing.T) {
	require.Equal(t, "new", TrackStateNew.String())
	require.Equal(t, "active", TrackStateActive.String())
	require.Equal(t, "stale", TrackStateStale.String())
	require.Equal(t, "deregistered", TrackStateDeregistered.String())
	require.Equal(t, "unknown", TrackState(42).String())
}
