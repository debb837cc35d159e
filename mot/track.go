package mot

// TrackState is lifecycle state of a track
type TrackState uint16

const (
	// TrackStateNew is a track registered on the current frame
	TrackStateNew TrackState = iota
	// TrackStateActive is a track matched on the current frame
	TrackStateActive
	// TrackStateStale is a live track which was not matched for one or more frames
	TrackStateStale
	// TrackStateDeregistered is terminal: the track is no longer in the live set
	TrackStateDeregistered
)

func (state TrackState) String() string {
	switch state {
	case TrackStateNew:
		return "new"
	case TrackStateActive:
		return "active"
	case TrackStateStale:
		return "stale"
	case TrackStateDeregistered:
		return "deregistered"
	default:
		return "unknown"
	}
}

// Track is a persistent identity: last known position plus count of consecutive unmatched frames.
type Track struct {
	id          int
	center      Point
	bbox        Rectangle
	disappeared int
	state       TrackState
	track       []Point
	maxTrackLen int
}

func newTrack(id int, detection Detection, maxTrackLen int) *Track {
	track := Track{
		id:          id,
		center:      detection.Center,
		bbox:        detection.BBox,
		disappeared: 0,
		state:       TrackStateNew,
		track:       make([]Point, 0, maxTrackLen),
		maxTrackLen: maxTrackLen,
	}
	track.appendTrack(detection.Center)
	return &track
}

// GetID returns track's identifier
func (track *Track) GetID() int {
	return track.id
}

// GetCenter returns track's last known position
func (track *Track) GetCenter() Point {
	return track.center
}

// GetBBox returns bounding box of the last detection matched to the track
func (track *Track) GetBBox() Rectangle {
	return track.bbox
}

// GetDisappeared returns number of consecutive frames the track has not been matched
func (track *Track) GetDisappeared() int {
	return track.disappeared
}

// GetState returns track's lifecycle state
func (track *Track) GetState() TrackState {
	return track.state
}

// GetTrack returns track's recent positions, oldest first. Be careful: this is not copy of track, but reference to it
func (track *Track) GetTrack() []Point {
	return track.track
}

// GetMaxTrackLen returns max number of positions kept in track
func (track *Track) GetMaxTrackLen() int {
	return track.maxTrackLen
}

func (track *Track) update(detection Detection) {
	track.center = detection.Center
	track.bbox = detection.BBox
	track.disappeared = 0
	track.state = TrackStateActive
	track.appendTrack(detection.Center)
}

func (track *Track) incDisappeared() {
	track.disappeared++
	track.state = TrackStateStale
}

func (track *Track) appendTrack(point Point) {
	if track.maxTrackLen <= 0 {
		return
	}
	track.track = append(track.track, point)
	if len(track.track) > track.maxTrackLen {
		track.track = track.track[1:]
	}
}
