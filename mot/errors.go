package mot

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when tracker construction is attempted with unusable parameters.
	ErrInvalidConfig = errors.New("invalid tracker configuration")
	// ErrMalformedDetection marks a detection with non-finite coordinates or negative extent.
	// Such detections are dropped from the frame, they never abort an update.
	ErrMalformedDetection = errors.New("malformed detection")
	// ErrFrameOutOfOrder is returned by Stream when frame indices do not strictly increase.
	ErrFrameOutOfOrder = errors.New("frame out of order")
)
