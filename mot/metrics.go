package mot

// FrameMetrics summarizes what a single Update did to the live-track set.
type FrameMetrics struct {
	// Live tracks after the frame
	LiveTracks int
	// Tracks registered during the frame
	Registered int
	// Tracks removed during the frame
	Deregistered int
	// Pairs kept by gating
	Matched int
	// Pairs the solver proposed but gating rejected
	Gated int
}

// MetricsCollector records tracker metrics.
//
// Implementations must be non-blocking. A tracker calls them from the goroutine running Update.
type MetricsCollector interface {
	// RecordFrame is called once per Update after all transitions are applied.
	RecordFrame(frame FrameMetrics)
	// RecordDroppedDetection is called for every malformed detection removed from a frame.
	RecordDroppedDetection(reason string)
	// RecordMatchDistance is called for every pair that passed gating.
	RecordMatchDistance(distance float64)
}

// NopMetrics is a no-op MetricsCollector
type NopMetrics struct{}

var _ MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a collector that records nothing
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

func (n *NopMetrics) RecordFrame(_ FrameMetrics)      {}
func (n *NopMetrics) RecordDroppedDetection(_ string) {}
func (n *NopMetrics) RecordMatchDistance(_ float64)   {}
