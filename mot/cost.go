package mot

import (
	"gonum.org/v1/gonum/mat"
)

// Cost returns distance between last known track position and candidate detection position.
// Both points are expected to be finite.
func Cost(trackPosition, detectionPosition Point) float64 {
	return euclideanDistance(trackPosition, detectionPosition)
}

// NewCostMatrix builds len(tracks) x len(detections) matrix of Cost values.
// Row order follows tracks, column order follows detections.
// Returns nil when either side is empty: gonum does not allow zero-sized dense matrices.
func NewCostMatrix(tracks, detections []Point) *mat.Dense {
	if len(tracks) == 0 || len(detections) == 0 {
		return nil
	}
	data := make([]float64, 0, len(tracks)*len(detections))
	for _, trackPosition := range tracks {
		for _, detectionPosition := range detections {
			data = append(data, Cost(trackPosition, detectionPosition))
		}
	}
	return mat.NewDense(len(tracks), len(detections), data)
}
