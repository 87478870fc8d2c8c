// Package location is the app's view of the device positioning service:
// a foreground permission prompt followed by a one-shot position read.
package location

import (
	"context"
	"errors"

	"immo-map/models"
)

type PermissionStatus string

const (
	Granted      PermissionStatus = "granted"
	Denied       PermissionStatus = "denied"
	Undetermined PermissionStatus = "undetermined"
)

var ErrUnavailable = errors.New("location unavailable")

type Locator interface {
	RequestForegroundPermission(ctx context.Context) (PermissionStatus, error)
	CurrentPosition(ctx context.Context) (models.Coordinate, error)
}

// Static reports a fixed position. A nil Position makes it deny permission,
// which is how a device without a configured location behaves.
type Static struct {
	Position *models.Coordinate
}

// NewStatic builds a Static locator from optional latitude/longitude values.
func NewStatic(lat, lon *float64) *Static {
	if lat == nil || lon == nil {
		return &Static{}
	}
	return &Static{Position: &models.Coordinate{Latitude: *lat, Longitude: *lon}}
}

func (s *Static) RequestForegroundPermission(ctx context.Context) (PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return Undetermined, err
	}
	if s.Position == nil {
		return Denied, nil
	}
	return Granted, nil
}

func (s *Static) CurrentPosition(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}
	if s.Position == nil {
		return models.Coordinate{}, ErrUnavailable
	}
	return *s.Position, nil
}

// CenteredRegion returns the region centered on at with the same span on both axes.
func CenteredRegion(at models.Coordinate, delta float64) models.Region {
	return models.Region{
		Latitude:       at.Latitude,
		Longitude:      at.Longitude,
		LatitudeDelta:  delta,
		LongitudeDelta: delta,
	}
}
