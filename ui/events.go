package ui

import "immo-map/models"

// Event is anything that can move the map view from one state to the next:
// user input as well as results of background work.
type Event interface{ event() }

type (
	// OpenMap is the landing view's "add listing" action.
	OpenMap     struct{}
	GoToLanding struct{}

	ToggleAddMode struct{}
	MapTapped     struct{ At models.Coordinate }
	MarkerTapped  struct{ Marker models.Marker }
	FieldChanged  struct {
		Field models.FormField
		Value string
	}
	SubmitSell struct{}
	SubmitRent struct{}
	Cancel     struct{}

	MarkersLoaded    struct{ Markers []models.Marker }
	MarkersFailed    struct{ Err error }
	LocationResolved struct{ At models.Coordinate }
	LocationDenied   struct{}
	LocationFailed   struct{ Err error }
	ListingSaved     struct{ Marker models.Marker }
	SaveFailed       struct{ Err error }
)

func (OpenMap) event()          {}
func (GoToLanding) event()      {}
func (ToggleAddMode) event()    {}
func (MapTapped) event()        {}
func (MarkerTapped) event()     {}
func (FieldChanged) event()     {}
func (SubmitSell) event()       {}
func (SubmitRent) event()       {}
func (Cancel) event()           {}
func (MarkersLoaded) event()    {}
func (MarkersFailed) event()    {}
func (LocationResolved) event() {}
func (LocationDenied) event()   {}
func (LocationFailed) event()   {}
func (ListingSaved) event()     {}
func (SaveFailed) event()       {}

// Effect is work the reducer asks the runtime to perform.
type Effect interface{ effect() }

type (
	FetchMarkers    struct{}
	RequestLocation struct{}
	SaveListing     struct{ Payload models.ListingPayload }
	LogMarker       struct{ Marker models.Marker }
	LogError        struct {
		Context string
		Err     error
	}
	LogWarning struct{ Message string }
)

func (FetchMarkers) effect()    {}
func (RequestLocation) effect() {}
func (SaveListing) effect()     {}
func (LogMarker) effect()       {}
func (LogError) effect()        {}
func (LogWarning) effect()      {}
