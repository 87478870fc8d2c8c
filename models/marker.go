package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
)

type ListingType string

const (
	TypeNone ListingType = ""
	TypeSell ListingType = "sell"
	TypeRent ListingType = "rent"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Region is the visible map area: a center point plus the span shown on each axis.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// MarkerID is assigned by the backend. Some backends hand out numeric ids,
// so decoding accepts both JSON strings and numbers.
type MarkerID string

func (id *MarkerID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = MarkerID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("marker id must be a string or number, got %s", b)
	}
	*id = MarkerID(b)
	return nil
}

// Marker is a pin on the map. Without an ID it is a local placeholder that
// only exists until the listing form is submitted; with an ID it mirrors a
// record returned by the backend.
type Marker struct {
	ID          MarkerID    `json:"id,omitempty" bson:"_id"`
	Key         string      `json:"key,omitempty" bson:"-"`
	Coordinate  Coordinate  `json:"coordinate" bson:"coordinate"`
	Price       string      `json:"price" bson:"price"`
	Rooms       string      `json:"rooms" bson:"rooms"`
	Surface     string      `json:"surface" bson:"surface"`
	Description string      `json:"description" bson:"description"`
	Type        ListingType `json:"type" bson:"type"`
}

func (m Marker) Confirmed() bool {
	return m.ID != ""
}

// PinColor mirrors the map legend: sell listings are red, everything else blue.
func (m Marker) PinColor() string {
	if m.Type == TypeSell {
		return "red"
	}
	return "blue"
}

// Callout returns the lines shown in the bubble above a pin.
func (m Marker) Callout() []string {
	return []string{
		"Price: " + m.Price,
		"Rooms: " + m.Rooms,
		"Surface: " + m.Surface,
		"Description: " + m.Description,
		"Type: " + string(m.Type),
	}
}

// ListingPayload is the body of POST /markers.
type ListingPayload struct {
	Price       string      `json:"price"`
	Rooms       string      `json:"rooms"`
	Surface     string      `json:"surface"`
	Description string      `json:"description"`
	Type        ListingType `json:"type"`
	Coordinate  Coordinate  `json:"coordinate"`
}

// ToMarker turns a payload into a confirmed marker carrying id.
func (p ListingPayload) ToMarker(id MarkerID) Marker {
	return Marker{
		ID:          id,
		Coordinate:  p.Coordinate,
		Price:       p.Price,
		Rooms:       p.Rooms,
		Surface:     p.Surface,
		Description: p.Description,
		Type:        p.Type,
	}
}
