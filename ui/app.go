package ui

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"immo-map/location"
	"immo-map/models"
	"immo-map/utils"
)

// MarkerClient is the slice of the listings backend the map view uses.
type MarkerClient interface {
	FetchMarkers(ctx context.Context) ([]models.Marker, error)
	SaveMarker(ctx context.Context, payload models.ListingPayload) (models.Marker, error)
}

// App owns one map view instance. Transitions are applied one at a time
// under a lock; network and location work runs in background tasks whose
// results come back through Dispatch. All tasks share the app's lifetime
// context, so Close cancels whatever is still in flight and results that
// arrive afterwards are discarded.
type App struct {
	reducer Reducer
	client  MarkerClient
	locator location.Locator

	ctx    context.Context
	cancel context.CancelFunc
	tasks  errgroup.Group

	mu     sync.Mutex
	state  State
	closed bool
}

func NewApp(client MarkerClient, locator location.Locator, zoomDelta float64) *App {
	return NewAppWithReducer(Reducer{NewKey: uuid.NewString, ZoomDelta: zoomDelta}, client, locator)
}

func NewAppWithReducer(r Reducer, client MarkerClient, locator location.Locator) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		reducer: r,
		client:  client,
		locator: locator,
		ctx:     ctx,
		cancel:  cancel,
		state:   InitialState(),
	}
}

// State returns the current view state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Dispatch applies ev and starts any work it requires. Events dispatched
// after Close are ignored.
func (a *App) Dispatch(ev Event) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	next, effects := a.reducer.Reduce(a.state, ev)
	a.state = next
	a.mu.Unlock()

	for _, eff := range effects {
		a.perform(eff)
	}
}

// Wait blocks until every background task started so far, and any task
// those tasks started, has finished.
func (a *App) Wait() {
	_ = a.tasks.Wait()
}

// Close cancels outstanding work and waits for it to drain.
func (a *App) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	a.cancel()
	a.Wait()
}

func (a *App) perform(eff Effect) {
	switch eff := eff.(type) {
	case FetchMarkers:
		a.spawn(a.fetchMarkers)
	case RequestLocation:
		a.spawn(a.locate)
	case SaveListing:
		a.spawn(func(ctx context.Context) { a.save(ctx, eff.Payload) })
	case LogMarker:
		utils.Info("Marker pressed: %+v", eff.Marker)
	case LogError:
		utils.Error("%s: %v", eff.Context, eff.Err)
	case LogWarning:
		utils.Warn("%s", eff.Message)
	}
}

func (a *App) spawn(fn func(ctx context.Context)) {
	a.tasks.Go(func() error {
		fn(a.ctx)
		return nil
	})
}

// post feeds a task result back unless the app has been torn down meanwhile.
func (a *App) post(ctx context.Context, ev Event) {
	if ctx.Err() != nil {
		return
	}
	a.Dispatch(ev)
}

func (a *App) fetchMarkers(ctx context.Context) {
	markers, err := a.client.FetchMarkers(ctx)
	if err != nil {
		a.post(ctx, MarkersFailed{Err: err})
		return
	}
	a.post(ctx, MarkersLoaded{Markers: markers})
}

func (a *App) locate(ctx context.Context) {
	status, err := a.locator.RequestForegroundPermission(ctx)
	if err != nil {
		a.post(ctx, LocationFailed{Err: err})
		return
	}
	if status != location.Granted {
		a.post(ctx, LocationDenied{})
		return
	}

	pos, err := a.locator.CurrentPosition(ctx)
	if err != nil {
		a.post(ctx, LocationFailed{Err: err})
		return
	}
	utils.Info("Current position: %.6f, %.6f", pos.Latitude, pos.Longitude)
	a.post(ctx, LocationResolved{At: pos})
}

func (a *App) save(ctx context.Context, payload models.ListingPayload) {
	saved, err := a.client.SaveMarker(ctx, payload)
	if err != nil {
		a.post(ctx, SaveFailed{Err: err})
		return
	}
	a.post(ctx, ListingSaved{Marker: saved})
}
