package ui

import (
	"strconv"

	"immo-map/location"
	"immo-map/models"
)

// State is everything the app shows. It is replaced wholesale on every
// transition, never mutated in place.
type State struct {
	Markers      []models.Marker
	ModalVisible bool
	Form         models.Form
	MapKey       string
	AddMode      bool
	Region       *models.Region
	ShowLanding  bool
	Initialized  bool
}

func InitialState() State {
	return State{ShowLanding: true}
}

// AddModeLabel is the caption of the add-mode toggle button.
func (s State) AddModeLabel() string {
	if s.AddMode {
		return "Cancel"
	}
	return "Add Marker"
}

// Reducer computes state transitions. NewKey produces the token that forces
// the map widget to redraw; ZoomDelta is the span used when centering on the
// device position.
type Reducer struct {
	NewKey    func() string
	ZoomDelta float64
}

// Reduce applies ev to s and returns the next state together with the side
// effects the runtime must carry out. s is never modified.
func (r Reducer) Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case OpenMap:
		s.ShowLanding = false
		if s.Initialized {
			return s, nil
		}
		s.Initialized = true
		return s, []Effect{FetchMarkers{}, RequestLocation{}}

	case GoToLanding:
		s.ShowLanding = true
		return s, nil

	case ToggleAddMode:
		s.AddMode = !s.AddMode
		return s, nil

	case MapTapped:
		if !s.AddMode {
			return s, nil
		}
		// The key is the list length at insert time, which collides once
		// entries are appended by a save. Kept as is; nothing reads it back.
		s.Markers = appendMarker(s.Markers, models.Marker{
			Coordinate: ev.At,
			Key:        strconv.Itoa(len(s.Markers)),
			Type:       models.TypeNone,
		})
		s.ModalVisible = true
		s.MapKey = r.NewKey()
		return s, nil

	case MarkerTapped:
		return s, []Effect{LogMarker{Marker: ev.Marker}}

	case FieldChanged:
		s.Form = s.Form.With(ev.Field, ev.Value)
		return s, nil

	case SubmitSell:
		return r.submit(s, models.TypeSell)

	case SubmitRent:
		return r.submit(s, models.TypeRent)

	case Cancel:
		s.ModalVisible = false
		s.Form = models.Form{}
		return s, nil

	case MarkersLoaded:
		s.Markers = appendMarker(nil, ev.Markers...)
		return s, nil

	case MarkersFailed:
		return s, []Effect{LogError{Context: "fetch markers", Err: ev.Err}}

	case LocationResolved:
		region := location.CenteredRegion(ev.At, r.ZoomDelta)
		s.Region = &region
		return s, nil

	case LocationDenied:
		return s, []Effect{LogWarning{Message: "Permission to access location was denied"}}

	case LocationFailed:
		return s, []Effect{LogError{Context: "current position", Err: ev.Err}}

	case ListingSaved:
		// The placeholder the listing came from stays in the sequence; the
		// confirmed record is added next to it.
		s.Markers = appendMarker(s.Markers, ev.Marker)
		s.MapKey = r.NewKey()
		return s, nil

	case SaveFailed:
		return s, []Effect{LogError{Context: "save marker", Err: ev.Err}}
	}

	return s, nil
}

func (r Reducer) submit(s State, t models.ListingType) (State, []Effect) {
	var effects []Effect
	if n := len(s.Markers); n > 0 {
		payload := s.Form.Payload(t, s.Markers[n-1].Coordinate)
		effects = append(effects, SaveListing{Payload: payload})
	} else {
		effects = append(effects, LogWarning{Message: "submit ignored: no marker placed"})
	}

	s.ModalVisible = false
	s.Form = models.Form{}
	return s, effects
}

// appendMarker copies base before appending so earlier states keep their own backing array.
func appendMarker(base []models.Marker, more ...models.Marker) []models.Marker {
	out := make([]models.Marker, 0, len(base)+len(more))
	out = append(out, base...)
	return append(out, more...)
}
