package models

type FormField string

const (
	FieldPrice       FormField = "price"
	FieldRooms       FormField = "rooms"
	FieldSurface     FormField = "surface"
	FieldDescription FormField = "description"
)

// Form holds the listing modal's text inputs. Values are kept as typed by
// the user; nothing is parsed or validated.
type Form struct {
	Price       string
	Rooms       string
	Surface     string
	Description string
}

// With returns a copy of f with one field replaced. Unknown fields leave f unchanged.
func (f Form) With(field FormField, value string) Form {
	switch field {
	case FieldPrice:
		f.Price = value
	case FieldRooms:
		f.Rooms = value
	case FieldSurface:
		f.Surface = value
	case FieldDescription:
		f.Description = value
	}
	return f
}

func (f Form) Payload(t ListingType, at Coordinate) ListingPayload {
	return ListingPayload{
		Price:       f.Price,
		Rooms:       f.Rooms,
		Surface:     f.Surface,
		Description: f.Description,
		Type:        t,
		Coordinate:  at,
	}
}
