package mot

import (
	"github.com/pkg/errors"
)

// Detection is a single observation produced by an external detector for one frame.
// It has no identity. Center is used for matching, BBox only travels downstream for rendering.
type Detection struct {
	BBox   Rectangle
	Center Point
}

// NewDetection creates detection from bounding box. Center is derived as middle of the box.
func NewDetection(bbox Rectangle) Detection {
	return Detection{
		BBox:   bbox,
		Center: bbox.Center(),
	}
}

// NewDetectionAt creates detection without extent
func NewDetectionAt(center Point) Detection {
	return Detection{
		BBox:   Rectangle{X: center.X, Y: center.Y},
		Center: center,
	}
}

// Validate returns error wrapping ErrMalformedDetection when any coordinate is not finite
// or when the extent is negative
func (d Detection) Validate() error {
	if !isFinite(d.Center.X) || !isFinite(d.Center.Y) {
		return errors.Wrapf(ErrMalformedDetection, "non-finite center (%v, %v)", d.Center.X, d.Center.Y)
	}
	if !isFinite(d.BBox.X) || !isFinite(d.BBox.Y) || !isFinite(d.BBox.Width) || !isFinite(d.BBox.Height) {
		return errors.Wrapf(ErrMalformedDetection, "non-finite bounding box %+v", d.BBox)
	}
	if d.BBox.Width < 0 || d.BBox.Height < 0 {
		return errors.Wrapf(ErrMalformedDetection, "negative extent %vx%v", d.BBox.Width, d.BBox.Height)
	}
	return nil
}

// malformedReason is a short label used for metrics
func malformedReason(d Detection) string {
	if !isFinite(d.Center.X) || !isFinite(d.Center.Y) || !isFinite(d.BBox.X) || !isFinite(d.BBox.Y) ||
		!isFinite(d.BBox.Width) || !isFinite(d.BBox.Height) {
		return "non_finite"
	}
	return "negative_extent"
}

// indexedDetection keeps position of a valid detection in the caller's slice
type indexedDetection struct {
	Detection
	index int
}

// droppedDetection describes a detection removed from a frame
type droppedDetection struct {
	index  int
	reason string
	err    error
}

// sanitizeDetections drops malformed detections preserving order of the rest
func sanitizeDetections(detections []Detection) ([]indexedDetection, []droppedDetection) {
	valid := make([]indexedDetection, 0, len(detections))
	var dropped []droppedDetection
	for i, detection := range detections {
		if err := detection.Validate(); err != nil {
			dropped = append(dropped, droppedDetection{
				index:  i,
				reason: malformedReason(detection),
				err:    err,
			})
			continue
		}
		valid = append(valid, indexedDetection{Detection: detection, index: i})
	}
	return valid, dropped
}
