package mot

import (
	"context"

	"github.com/pkg/errors"
)

// Frame is one frame worth of detections with caller-assigned index
type Frame struct {
	Index      int
	Detections []Detection
}

// FrameResult is tracker output for a frame
type FrameResult struct {
	Index    int
	Snapshot Snapshot
}

// StreamStats accumulates over the whole stream
type StreamStats struct {
	ProcessedFrames int
	// Largest number of live tracks seen after any frame
	MaxSimultaneous int
	// Distinct ids registered so far
	TotalUnique int
}

// Stream feeds frames to a single tracker enforcing strictly increasing frame indices.
// Like the tracker itself it must be driven from one goroutine.
type Stream struct {
	tracker   *CentroidTracker
	lastIndex int
	started   bool
	stats     StreamStats
}

// NewStream wraps tracker
func NewStream(tracker *CentroidTracker) *Stream {
	return &Stream{
		tracker: tracker,
	}
}

// Process runs tracker on a frame.
// A frame whose index does not exceed the previous one is rejected with ErrFrameOutOfOrder before the tracker is touched.
func (stream *Stream) Process(frame Frame) (FrameResult, error) {
	if stream.started && frame.Index <= stream.lastIndex {
		return FrameResult{}, errors.Wrapf(ErrFrameOutOfOrder, "frame %d after frame %d", frame.Index, stream.lastIndex)
	}
	stream.started = true
	stream.lastIndex = frame.Index

	snapshot := stream.tracker.Update(frame.Detections)
	stream.stats.ProcessedFrames++
	if snapshot.Stats.Current > stream.stats.MaxSimultaneous {
		stream.stats.MaxSimultaneous = snapshot.Stats.Current
	}
	stream.stats.TotalUnique = snapshot.Stats.TotalSeen
	return FrameResult{Index: frame.Index, Snapshot: snapshot}, nil
}

// Run drains frames from in and sends results to out until in is closed or ctx is done.
// Cancellation is observed between frames only: a frame that was taken from in is always fully processed.
// Returns nil when in is closed, ctx error on cancellation, or sequencing error.
func (stream *Stream) Run(ctx context.Context, in <-chan Frame, out chan<- FrameResult) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-in:
			if !ok {
				return nil
			}
			result, err := stream.Process(frame)
			if err != nil {
				return err
			}
			select {
			case out <- result:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Stats returns statistics accumulated so far
func (stream *Stream) Stats() StreamStats {
	return stream.stats
}

// Tracker returns underlying tracker
func (stream *Stream) Tracker() *CentroidTracker {
	return stream.tracker
}
