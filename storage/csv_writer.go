package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"immo-map/models"
	"immo-map/utils"
)

// CSVWriter exports the markers currently on the map to a CSV file.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (w *CSVWriter) Path() string {
	return w.path
}

// Write saves all markers to the CSV file, placeholders included.
// Creates the output directory if it does not exist.
//
// CSV columns: key, id, type, price, rooms, surface, description, latitude, longitude
func (w *CSVWriter) Write(markers []models.Marker) error {
	if len(markers) == 0 {
		utils.Warn("No markers to write")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	writer.Write([]string{"key", "id", "type", "price", "rooms", "surface", "description", "latitude", "longitude"})
	for _, m := range markers {
		writer.Write([]string{
			m.Key,
			string(m.ID),
			string(m.Type),
			m.Price,
			m.Rooms,
			m.Surface,
			m.Description,
			strconv.FormatFloat(m.Coordinate.Latitude, 'f', -1, 64),
			strconv.FormatFloat(m.Coordinate.Longitude, 'f', -1, 64),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	utils.Success("Saved %d markers → %s", len(markers), w.path)
	return nil
}
