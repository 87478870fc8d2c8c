package services

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"immo-map/models"
)

func TestSummarize(t *testing.T) {
	c := qt.New(t)

	markers := []models.Marker{
		{Key: "0"},
		{ID: "a", Type: models.TypeSell, Price: "500 000", Description: "nice flat"},
		{ID: "b", Type: models.TypeRent, Price: "900"},
		{ID: "c", Type: models.TypeRent, Price: "call me"},
		{Key: "4"},
	}

	r := Summarize(markers)
	c.Assert(r.TotalMarkers, qt.Equals, 5)
	c.Assert(r.Confirmed, qt.Equals, 3)
	c.Assert(r.Placeholders, qt.Equals, 2)
	c.Assert(r.SellListings, qt.Equals, 1)
	c.Assert(r.RentListings, qt.Equals, 2)
	c.Assert(r.PricedListings, qt.Equals, 2)
	c.Assert(r.MinPrice, qt.Equals, 900.0)
	c.Assert(r.MaxPrice, qt.Equals, 500000.0)
	c.Assert(r.AveragePrice, qt.Equals, 250450.0)
	c.Assert(r.MostExpensive.ID, qt.Equals, models.MarkerID("a"))

	var buf bytes.Buffer
	PrintReport(&buf, r)
	c.Assert(buf.String(), qt.Contains, "Confirmed listings")
	c.Assert(buf.String(), qt.Contains, "Most expensive: 500 000 (sell")
}

func TestSummarizeEmpty(t *testing.T) {
	c := qt.New(t)

	r := Summarize(nil)
	c.Assert(r, qt.DeepEquals, Report{})

	var buf bytes.Buffer
	PrintReport(&buf, r)
	c.Assert(buf.String(), qt.Not(qt.Contains), "Most expensive")
}
