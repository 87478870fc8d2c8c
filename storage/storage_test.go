package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"immo-map/models"
	"immo-map/utils"
)

func TestMemoryStore(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	s := NewMemoryStore()
	defer s.Close()

	list, err := s.List(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(list, qt.HasLen, 0)
	c.Assert(list, qt.IsNotNil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Create(ctx, models.Marker{ID: "x", Type: models.TypeRent})
		}()
	}
	wg.Wait()

	first := models.Marker{ID: "first", Type: models.TypeSell}
	c.Assert(s.Create(ctx, first), qt.IsNil)

	list, err = s.List(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(list, qt.HasLen, 21)
	c.Assert(list[20], qt.DeepEquals, first)

	list[20].Price = "mutated"
	again, _ := s.List(ctx)
	c.Assert(again[20].Price, qt.Equals, "")
}

func TestCSVWriter(t *testing.T) {
	c := qt.New(t)
	prev := utils.SetOutput(&bytes.Buffer{})
	defer utils.SetOutput(prev)

	path := filepath.Join(t.TempDir(), "out", "markers.csv")
	w := NewCSVWriter(path)

	err := w.Write([]models.Marker{
		{Key: "0", Coordinate: models.Coordinate{Latitude: 48.85, Longitude: 2.35}},
		{ID: "abc", Type: models.TypeSell, Price: "500000", Rooms: "3", Surface: "80", Description: "nice, flat",
			Coordinate: models.Coordinate{Latitude: 48.85, Longitude: 2.35}},
	})
	c.Assert(err, qt.IsNil)

	f, err := os.Open(path)
	c.Assert(err, qt.IsNil)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.DeepEquals, [][]string{
		{"key", "id", "type", "price", "rooms", "surface", "description", "latitude", "longitude"},
		{"0", "", "", "", "", "", "", "48.85", "2.35"},
		{"", "abc", "sell", "500000", "3", "80", "nice, flat", "48.85", "2.35"},
	})
}

func TestCSVWriterSkipsEmpty(t *testing.T) {
	c := qt.New(t)
	prev := utils.SetOutput(&bytes.Buffer{})
	defer utils.SetOutput(prev)

	path := filepath.Join(t.TempDir(), "markers.csv")
	c.Assert(NewCSVWriter(path).Write(nil), qt.IsNil)

	_, err := os.Stat(path)
	c.Assert(os.IsNotExist(err), qt.IsTrue)
}
