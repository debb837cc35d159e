package mot

import (
	"github.com/pkg/errors"
)

const (
	// DefaultMaxDisappeared is number of frames a track survives without a match
	DefaultMaxDisappeared = 30
	// DefaultMaxDistance is gating threshold in pixels
	DefaultMaxDistance = 100.0
	// DefaultMaxTrailLength is number of recent positions kept per track
	DefaultMaxTrailLength = 30
)

// Config holds construction-time parameters of CentroidTracker.
// Values are validated once in NewCentroidTracker and never re-checked per frame.
type Config struct {
	// Frames of grace before an unmatched track is deregistered. Must be positive.
	MaxDisappeared int `json:"max_disappeared"`
	// Maximum distance (same units as detection coordinates) between a track and
	// the detection it is matched to. Must be positive and finite.
	MaxDistance float64 `json:"max_distance"`
	// Number of positions kept in each track's trail. Zero means DefaultMaxTrailLength.
	MaxTrailLength int `json:"max_trail_length"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxDisappeared: DefaultMaxDisappeared,
		MaxDistance:    DefaultMaxDistance,
		MaxTrailLength: DefaultMaxTrailLength,
	}
}

// Validate checks configuration
func (cfg Config) Validate() error {
	if cfg.MaxDisappeared <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_disappeared must be positive, got %d", cfg.MaxDisappeared)
	}
	if !isFinite(cfg.MaxDistance) || cfg.MaxDistance <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_distance must be positive and finite, got %v", cfg.MaxDistance)
	}
	if cfg.MaxTrailLength < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_trail_length must not be negative, got %d", cfg.MaxTrailLength)
	}
	return nil
}

func (cfg Config) trailLength() int {
	if cfg.MaxTrailLength == 0 {
		return DefaultMaxTrailLength
	}
	return cfg.MaxTrailLength
}
