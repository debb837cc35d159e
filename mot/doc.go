// Package mot implements centroid-based multi-object tracking (MOT).
//
// Per frame, detections are matched to live tracks by the minimum total Euclidean distance
// (rectangular assignment), pairs farther than a configured distance are split back, unmatched
// tracks age and are deregistered after a grace period, and unmatched detections become new tracks
// with monotonically increasing ids.
//
// Basic usage:
//
//	tracker, err := mot.NewCentroidTracker(mot.Config{MaxDisappeared: 5, MaxDistance: 50})
//	if err != nil {
//		return err
//	}
//	for _, boxes := range frames {
//		detections := make([]mot.Detection, len(boxes))
//		for i, box := range boxes {
//			detections[i] = mot.NewDetection(box)
//		}
//		snapshot := tracker.Update(detections)
//		for _, object := range snapshot.Objects {
//			fmt.Println(object.ID, object.Center)
//		}
//	}
package mot
