package mot

import "sort"

// Transitions lists track ids affected by one frame, in the order changes were applied.
type Transitions struct {
	// Ids of tracks that received a detection
	Matched []int
	// Ids of tracks removed from the live set
	Deregistered []int
	// Ids allocated for new tracks
	Registered []int
	// Column (detection) index for every matched or registered id
	Columns map[int]int
}

// Registry owns the live-track set and issues identities.
//
// Live tracks are kept in ascending id order. Ids come from a monotonic counter starting at zero and
// are never reused, not even after Reset.
type Registry struct {
	tracks         []*Track
	nextID         int
	maxDisappeared int
	maxTrackLen    int
}

// NewRegistry creates empty registry
func NewRegistry(maxDisappeared, maxTrackLen int) *Registry {
	return &Registry{
		tracks:         make([]*Track, 0),
		nextID:         0,
		maxDisappeared: maxDisappeared,
		maxTrackLen:    maxTrackLen,
	}
}

// Tracks returns live tracks in ascending id order.
// Returned slice is a copy, tracks are shared.
func (registry *Registry) Tracks() []*Track {
	tracks := make([]*Track, len(registry.tracks))
	copy(tracks, registry.tracks)
	return tracks
}

// Len returns number of live tracks
func (registry *Registry) Len() int {
	return len(registry.tracks)
}

// TotalRegistered returns number of ids ever issued
func (registry *Registry) TotalRegistered() int {
	return registry.nextID
}

// Get returns live track by id
func (registry *Registry) Get(id int) (*Track, bool) {
	lo := sort.Search(len(registry.tracks), func(i int) bool {
		return registry.tracks[i].id >= id
	})
	if lo < len(registry.tracks) && registry.tracks[lo].id == id {
		return registry.tracks[lo], true
	}
	return nil, false
}

// Register creates new track for detection and returns it
func (registry *Registry) Register(detection Detection) *Track {
	track := newTrack(registry.nextID, detection, registry.maxTrackLen)
	registry.nextID++
	registry.tracks = append(registry.tracks, track)
	return track
}

// Apply mutates the live-track set according to gating outcome.
// Rows of result refer to Tracks() as they were before the call, columns refer to detections.
//
// Changes are applied in fixed order: matches, then disappearances (with deregistration on the same
// frame the counter exceeds maxDisappeared), then registrations.
func (registry *Registry) Apply(result GateResult, detections []Detection) Transitions {
	transitions := Transitions{
		Matched:      make([]int, 0, len(result.Matched)),
		Deregistered: make([]int, 0),
		Registered:   make([]int, 0, len(result.UnmatchedCols)),
		Columns:      make(map[int]int, len(result.Matched)+len(result.UnmatchedCols)),
	}
	rows := registry.tracks

	for _, pair := range result.Matched {
		track := rows[pair.Row]
		track.update(detections[pair.Col])
		transitions.Matched = append(transitions.Matched, track.id)
		transitions.Columns[track.id] = pair.Col
	}

	removed := false
	for _, row := range result.UnmatchedRows {
		track := rows[row]
		track.incDisappeared()
		if track.disappeared > registry.maxDisappeared {
			track.state = TrackStateDeregistered
			transitions.Deregistered = append(transitions.Deregistered, track.id)
			removed = true
		}
	}
	if removed {
		live := make([]*Track, 0, len(rows))
		for _, track := range rows {
			if track.state != TrackStateDeregistered {
				live = append(live, track)
			}
		}
		registry.tracks = live
	}

	for _, col := range result.UnmatchedCols {
		track := registry.Register(detections[col])
		transitions.Registered = append(transitions.Registered, track.id)
		transitions.Columns[track.id] = col
	}
	return transitions
}

// Reset drops every live track. Id counter keeps counting.
func (registry *Registry) Reset() {
	for _, track := range registry.tracks {
		track.state = TrackStateDeregistered
	}
	registry.tracks = make([]*Track, 0)
}
