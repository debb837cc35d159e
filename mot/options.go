package mot

import "github.com/google/uuid"

// Option configures optional CentroidTracker collaborators
type Option func(*CentroidTracker)

// WithLogger sets logger. Nil keeps the no-op logger.
func WithLogger(logger Logger) Option {
	return func(tracker *CentroidTracker) {
		if logger != nil {
			tracker.logger = logger
		}
	}
}

// WithMetrics sets metrics collector. Nil keeps the no-op collector.
func WithMetrics(collector MetricsCollector) Option {
	return func(tracker *CentroidTracker) {
		if collector != nil {
			tracker.metrics = collector
		}
	}
}

// WithStreamID overrides the random identifier attached to every log record of the tracker.
// Useful when the caller already has an identifier for the video stream.
func WithStreamID(streamID uuid.UUID) Option {
	return func(tracker *CentroidTracker) {
		tracker.streamID = streamID
	}
}
