package ui

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"immo-map/location"
	"immo-map/models"
	"immo-map/utils"
)

type fakeClient struct {
	mu       sync.Mutex
	markers  []models.Marker
	fetchErr error
	saveErr  error
	saved    []models.ListingPayload
	block    chan struct{}
}

func (f *fakeClient) FetchMarkers(ctx context.Context) ([]models.Marker, error) {
	return f.markers, f.fetchErr
}

func (f *fakeClient) SaveMarker(ctx context.Context, p models.ListingPayload) (models.Marker, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return models.Marker{}, ctx.Err()
		}
	}
	f.mu.Lock()
	f.saved = append(f.saved, p)
	f.mu.Unlock()
	if f.saveErr != nil {
		return models.Marker{}, f.saveErr
	}
	return p.ToMarker("abc"), nil
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

type failingLocator struct{}

func (failingLocator) RequestForegroundPermission(context.Context) (location.PermissionStatus, error) {
	return location.Granted, nil
}

func (failingLocator) CurrentPosition(context.Context) (models.Coordinate, error) {
	return models.Coordinate{}, errors.New("no fix")
}

func quietLogs(c *qt.C) *bytes.Buffer {
	var buf bytes.Buffer
	prev := utils.SetOutput(&buf)
	c.Cleanup(func() { utils.SetOutput(prev) })
	return &buf
}

func newTestApp(client MarkerClient, loc location.Locator) *App {
	return NewAppWithReducer(testReducer(), client, loc)
}

func TestAppInitializeLoadsMarkersAndCenters(t *testing.T) {
	c := qt.New(t)
	quietLogs(c)

	lat, lon := 48.85, 2.35
	existing := []models.Marker{{ID: "1", Type: models.TypeSell}, {ID: "2", Type: models.TypeRent}}
	app := newTestApp(&fakeClient{markers: existing}, location.NewStatic(&lat, &lon))
	defer app.Close()

	app.Dispatch(OpenMap{})
	app.Wait()

	s := app.State()
	c.Assert(s.Markers, qt.DeepEquals, existing)
	c.Assert(*s.Region, qt.Equals, models.Region{Latitude: 48.85, Longitude: 2.35, LatitudeDelta: 0.01, LongitudeDelta: 0.01})
}

func TestAppInitializeFailuresAreSwallowed(t *testing.T) {
	c := qt.New(t)
	logs := quietLogs(c)

	app := newTestApp(&fakeClient{fetchErr: errors.New("connection refused")}, location.NewStatic(nil, nil))
	defer app.Close()

	app.Dispatch(OpenMap{})
	app.Wait()

	s := app.State()
	c.Assert(s.Markers, qt.HasLen, 0)
	c.Assert(s.Region, qt.IsNil)
	c.Assert(s.ShowLanding, qt.IsFalse)
	c.Assert(logs.String(), qt.Contains, "fetch markers: connection refused")
	c.Assert(logs.String(), qt.Contains, "Permission to access location was denied")
}

func TestAppPositionFailureLeavesRegionUnset(t *testing.T) {
	c := qt.New(t)
	logs := quietLogs(c)

	app := newTestApp(&fakeClient{}, failingLocator{})
	defer app.Close()

	app.Dispatch(OpenMap{})
	app.Wait()

	c.Assert(app.State().Region, qt.IsNil)
	c.Assert(logs.String(), qt.Contains, "current position: no fix")
}

func TestAppSubmitSellRoundTrip(t *testing.T) {
	c := qt.New(t)
	quietLogs(c)

	client := &fakeClient{}
	app := newTestApp(client, location.NewStatic(nil, nil))
	defer app.Close()

	at := models.Coordinate{Latitude: 1, Longitude: 2}
	for _, ev := range append([]Event{OpenMap{}, ToggleAddMode{}, MapTapped{At: at}}, fillForm()...) {
		app.Dispatch(ev)
	}
	c.Assert(app.State().ModalVisible, qt.IsTrue)

	app.Dispatch(SubmitSell{})
	app.Wait()

	s := app.State()
	c.Assert(s.ModalVisible, qt.IsFalse)
	c.Assert(s.Form, qt.Equals, models.Form{})
	c.Assert(s.Markers, qt.HasLen, 2)
	c.Assert(s.Markers[1], qt.DeepEquals, models.Marker{
		ID: "abc", Coordinate: at, Price: "500000", Rooms: "3", Surface: "80", Description: "nice flat", Type: models.TypeSell,
	})
	c.Assert(client.calls(), qt.Equals, 1)
}

func TestAppCancelSendsNothing(t *testing.T) {
	c := qt.New(t)
	quietLogs(c)

	client := &fakeClient{}
	app := newTestApp(client, location.NewStatic(nil, nil))
	defer app.Close()

	for _, ev := range []Event{OpenMap{}, ToggleAddMode{}, MapTapped{}, FieldChanged{Field: models.FieldPrice, Value: "9"}, Cancel{}} {
		app.Dispatch(ev)
	}
	app.Wait()

	s := app.State()
	c.Assert(s.ModalVisible, qt.IsFalse)
	c.Assert(s.Form, qt.Equals, models.Form{})
	c.Assert(client.calls(), qt.Equals, 0)
}

func TestAppSaveFailureKeepsPlaceholder(t *testing.T) {
	c := qt.New(t)
	logs := quietLogs(c)

	app := newTestApp(&fakeClient{saveErr: errors.New("503")}, location.NewStatic(nil, nil))
	defer app.Close()

	for _, ev := range []Event{OpenMap{}, ToggleAddMode{}, MapTapped{}, SubmitRent{}} {
		app.Dispatch(ev)
	}
	app.Wait()

	s := app.State()
	c.Assert(s.Markers, qt.HasLen, 1)
	c.Assert(s.Markers[0].Confirmed(), qt.IsFalse)
	c.Assert(logs.String(), qt.Contains, "save marker: 503")
}

func TestAppCloseDropsLateResults(t *testing.T) {
	c := qt.New(t)
	quietLogs(c)

	client := &fakeClient{block: make(chan struct{})}
	app := newTestApp(client, location.NewStatic(nil, nil))

	for _, ev := range []Event{OpenMap{}, ToggleAddMode{}, MapTapped{}, SubmitSell{}} {
		app.Dispatch(ev)
	}
	app.Close()

	s := app.State()
	c.Assert(s.Markers, qt.HasLen, 1)

	app.Dispatch(ToggleAddMode{})
	c.Assert(app.State().AddMode, qt.IsTrue)
}

func TestAppNavigationKeepsConfirmedMarkers(t *testing.T) {
	c := qt.New(t)
	quietLogs(c)

	app := newTestApp(&fakeClient{}, location.NewStatic(nil, nil))
	defer app.Close()

	for _, ev := range []Event{OpenMap{}, ToggleAddMode{}, MapTapped{}, SubmitSell{}} {
		app.Dispatch(ev)
	}
	app.Wait()
	app.Dispatch(GoToLanding{})
	c.Assert(app.State().ShowLanding, qt.IsTrue)

	app.Dispatch(OpenMap{})
	app.Wait()
	s := app.State()
	c.Assert(s.ShowLanding, qt.IsFalse)
	c.Assert(s.Markers, qt.HasLen, 2)
	c.Assert(s.Markers[1].ID, qt.Equals, models.MarkerID("abc"))
}
