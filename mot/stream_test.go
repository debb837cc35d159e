package mot

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStreamProcessOrder(t *testing.T) {
	stream := NewStream(newTestTracker(t))

	result, err := stream.Process(Frame{Index: 1, Detections: []Detection{at(10, 10)}})
	require.NoError(t, err)
	require.Equal(t, 1, result.Index)
	require.Equal(t, map[int]Point{0: {X: 10, Y: 10}}, result.Snapshot.Positions())

	// Same or older index is rejected without touching the tracker
	_, err = stream.Process(Frame{Index: 1, Detections: []Detection{at(400, 400)}})
	require.True(t, errors.Is(err, ErrFrameOutOfOrder))
	_, err = stream.Process(Frame{Index: 0})
	require.True(t, errors.Is(err, ErrFrameOutOfOrder))
	require.Equal(t, Statistics{Current: 1, TotalSeen: 1}, stream.Tracker().Statistics())
	require.Equal(t, 0, stream.Tracker().Tracks()[0].GetDisappeared())

	// Gaps are allowed
	_, err = stream.Process(Frame{Index: 5, Detections: []Detection{at(12, 10), at(200, 200)}})
	require.NoError(t, err)
	require.Equal(t, StreamStats{ProcessedFrames: 2, MaxSimultaneous: 2, TotalUnique: 2}, stream.Stats())
}

func TestStreamRun(t *testing.T) {
	stream := NewStream(newTestTracker(t))
	in := make(chan Frame)
	out := make(chan FrameResult, 10)

	frames := []Frame{
		{Index: 1, Detections: []Detection{at(10, 10)}},
		{Index: 2, Detections: []Detection{at(15, 12)}},
		{Index: 3},
	}
	go func() {
		for _, frame := range frames {
			in <- frame
		}
		close(in)
	}()

	require.NoError(t, stream.Run(context.Background(), in, out))
	close(out)

	indices := make([]int, 0, len(frames))
	for result := range out {
		indices = append(indices, result.Index)
	}
	require.Equal(t, []int{1, 2, 3}, indices)
	require.Equal(t, StreamStats{ProcessedFrames: 3, MaxSimultaneous: 1, TotalUnique: 1}, stream.Stats())
}

func TestStreamRunOutOfOrder(t *testing.T) {
	stream := NewStream(newTestTracker(t))
	in := make(chan Frame, 2)
	out := make(chan FrameResult, 2)
	in <- Frame{Index: 2}
	in <- Frame{Index: 1}
	close(in)

	err := stream.Run(context.Background(), in, out)
	require.True(t, errors.Is(err, ErrFrameOutOfOrder))
	require.Len(t, out, 1)
}

func TestStreamRunCancelled(t *testing.T) {
	stream := NewStream(newTestTracker(t))
	in := make(chan Frame)
	out := make(chan FrameResult)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := stream.Run(ctx, in, out)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StreamStats{}, stream.Stats())
}
