package mot

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TrackedObject is a read-only view of a live track after a frame
type TrackedObject struct {
	ID          int
	Center      Point
	BBox        Rectangle
	Disappeared int
	State       TrackState
	// Index of the detection (in the slice passed to Update) that fed the track on this frame.
	// -1 when the track was not matched on this frame.
	DetectionIndex int
}

// Statistics is tracker-wide counters
type Statistics struct {
	// Number of live tracks
	Current int
	// Number of distinct ids ever registered. Never decreases.
	TotalSeen int
}

// Snapshot is the outcome of one Update
type Snapshot struct {
	// Live tracks in ascending id order
	Objects []TrackedObject
	Stats   Statistics
	// Number of malformed detections dropped from the frame
	Dropped int
}

// Positions returns id -> position mapping of live tracks
func (snapshot Snapshot) Positions() map[int]Point {
	positions := make(map[int]Point, len(snapshot.Objects))
	for _, object := range snapshot.Objects {
		positions[object.ID] = object.Center
	}
	return positions
}

// CentroidTracker is Multi-object tracker (MOT) that matches detections to tracks by minimum total
// centroid distance.
//
// Each frame: live tracks and detections form a Euclidean cost matrix, SolveAssignment picks the optimal
// matching, Gate rejects pairs farther than max distance, Registry applies the transitions.
//
// Not safe for concurrent use. Update must be called once per frame, in video time order.
// Independent streams need independent trackers.
type CentroidTracker struct {
	registry *Registry
	// Gating threshold (most of time in pixels)
	maxDistance float64
	// Frames of grace before deregistration
	maxDisappeared int

	streamID uuid.UUID
	logger   Logger
	metrics  MetricsCollector
}

// NewCentroidTrackerDefault creates tracker with DefaultConfig
func NewCentroidTrackerDefault(opts ...Option) *CentroidTracker {
	tracker, err := NewCentroidTracker(DefaultConfig(), opts...)
	if err != nil {
		panic("default configuration must be valid: " + err.Error())
	}
	return tracker
}

// NewCentroidTracker creates new instance of CentroidTracker.
// Returns error wrapping ErrInvalidConfig when configuration is not valid.
func NewCentroidTracker(cfg Config, opts ...Option) (*CentroidTracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "can't create centroid tracker")
	}
	tracker := &CentroidTracker{
		registry:       NewRegistry(cfg.MaxDisappeared, cfg.trailLength()),
		maxDistance:    cfg.MaxDistance,
		maxDisappeared: cfg.MaxDisappeared,
		streamID:       uuid.New(),
		logger:         NewNopLogger(),
		metrics:        NewNopMetrics(),
	}
	for _, opt := range opts {
		opt(tracker)
	}
	return tracker, nil
}

// StreamID returns identifier attached to the tracker's log records
func (tracker *CentroidTracker) StreamID() uuid.UUID {
	return tracker.streamID
}

// Update processes detections of one frame and returns live tracks after the frame.
//
// Malformed detections (non-finite coordinates, negative extent) are dropped and reported via logger
// and metrics, the rest of the frame is processed normally. An empty slice is valid: it ages every track.
func (tracker *CentroidTracker) Update(detections []Detection) Snapshot {
	valid, dropped := sanitizeDetections(detections)
	for _, drop := range dropped {
		tracker.logger.Warn("dropping malformed detection",
			"stream_id", tracker.streamID.String(),
			"index", drop.index,
			"reason", drop.reason,
			"error", drop.err.Error(),
		)
		tracker.metrics.RecordDroppedDetection(drop.reason)
	}

	tracks := tracker.registry.Tracks()
	trackPositions := make([]Point, len(tracks))
	for i, track := range tracks {
		trackPositions[i] = track.center
	}
	frameDetections := make([]Detection, len(valid))
	detectionPositions := make([]Point, len(valid))
	for i, detection := range valid {
		frameDetections[i] = detection.Detection
		detectionPositions[i] = detection.Center
	}

	pairs := []Pair{}
	if len(tracks) > 0 && len(valid) > 0 {
		pairs = SolveAssignment(NewCostMatrix(trackPositions, detectionPositions))
	}
	gated := Gate(pairs, len(tracks), len(valid), tracker.maxDistance)
	transitions := tracker.registry.Apply(gated, frameDetections)

	for _, pair := range gated.Matched {
		tracker.metrics.RecordMatchDistance(pair.Cost)
	}
	for _, id := range transitions.Deregistered {
		tracker.logger.Debug("track deregistered",
			"stream_id", tracker.streamID.String(),
			"track_id", id,
			"max_disappeared", tracker.maxDisappeared,
		)
	}
	for _, id := range transitions.Registered {
		tracker.logger.Debug("track registered",
			"stream_id", tracker.streamID.String(),
			"track_id", id,
		)
	}
	tracker.metrics.RecordFrame(FrameMetrics{
		LiveTracks:   tracker.registry.Len(),
		Registered:   len(transitions.Registered),
		Deregistered: len(transitions.Deregistered),
		Matched:      len(gated.Matched),
		Gated:        len(gated.Rejected),
	})

	return tracker.snapshot(transitions, valid, len(dropped))
}

func (tracker *CentroidTracker) snapshot(transitions Transitions, valid []indexedDetection, dropped int) Snapshot {
	live := tracker.registry.Tracks()
	objects := make([]TrackedObject, 0, len(live))
	for _, track := range live {
		detectionIndex := -1
		if col, ok := transitions.Columns[track.id]; ok {
			detectionIndex = valid[col].index
		}
		objects = append(objects, TrackedObject{
			ID:             track.id,
			Center:         track.center,
			BBox:           track.bbox,
			Disappeared:    track.disappeared,
			State:          track.state,
			DetectionIndex: detectionIndex,
		})
	}
	return Snapshot{
		Objects: objects,
		Stats:   tracker.Statistics(),
		Dropped: dropped,
	}
}

// Statistics returns current live-track count and number of ids ever registered
func (tracker *CentroidTracker) Statistics() Statistics {
	return Statistics{
		Current:   tracker.registry.Len(),
		TotalSeen: tracker.registry.TotalRegistered(),
	}
}

// Tracks returns live tracks in ascending id order
func (tracker *CentroidTracker) Tracks() []*Track {
	return tracker.registry.Tracks()
}

// Trajectory returns copy of recent positions of a live track, oldest first.
// Returns nil for unknown or deregistered ids.
func (tracker *CentroidTracker) Trajectory(id int) []Point {
	track, ok := tracker.registry.Get(id)
	if !ok {
		return nil
	}
	trajectory := make([]Point, len(track.track))
	copy(trajectory, track.track)
	return trajectory
}

// Reset removes all live tracks. Ids are not reused afterwards and TotalSeen keeps its value.
func (tracker *CentroidTracker) Reset() {
	tracker.registry.Reset()
	tracker.logger.Info("tracker reset", "stream_id", tracker.streamID.String())
}
