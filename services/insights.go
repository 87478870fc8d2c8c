package services

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"immo-map/models"
)

type Report struct {
	TotalMarkers   int
	Confirmed      int
	Placeholders   int
	SellListings   int
	RentListings   int
	PricedListings int
	AveragePrice   float64
	MinPrice       float64
	MaxPrice       float64
	MostExpensive  models.Marker
}

// Summarize computes the figures shown by "browse listings". Prices are
// free text, so only those that parse as numbers count towards the price
// statistics.
func Summarize(markers []models.Marker) Report {
	report := Report{TotalMarkers: len(markers)}

	var (
		priceSum float64
		maxPrice = -1.0
		minPrice = math.MaxFloat64
	)

	for _, m := range markers {
		if !m.Confirmed() {
			report.Placeholders++
			continue
		}
		report.Confirmed++

		switch m.Type {
		case models.TypeSell:
			report.SellListings++
		case models.TypeRent:
			report.RentListings++
		}

		price, ok := parsePrice(m.Price)
		if !ok {
			continue
		}
		priceSum += price
		report.PricedListings++

		if price > maxPrice {
			maxPrice = price
			report.MostExpensive = m
		}
		if price < minPrice {
			minPrice = price
		}
	}

	if report.PricedListings > 0 {
		report.AveragePrice = priceSum / float64(report.PricedListings)
		report.MinPrice = minPrice
		report.MaxPrice = maxPrice
	}

	return report
}

func PrintReport(w io.Writer, report Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                         Listings Overview                    │")
	fmt.Fprintln(w, "├───────────────────────────────┬──────────────────────────────┤")
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Markers on map", report.TotalMarkers)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Confirmed listings", report.Confirmed)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Unsaved pins", report.Placeholders)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "For sale", report.SellListings)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "For rent", report.RentListings)
	fmt.Fprintf(w, "│ %-29s │ %-28.2f │\n", "Average Price", report.AveragePrice)
	fmt.Fprintf(w, "│ %-29s │ %-28.2f │\n", "Minimum Price", report.MinPrice)
	fmt.Fprintf(w, "│ %-29s │ %-28.2f │\n", "Maximum Price", report.MaxPrice)
	fmt.Fprintln(w, "└───────────────────────────────┴──────────────────────────────┘")

	if report.MostExpensive.Confirmed() {
		fmt.Fprintf(w, "Most expensive: %s (%s, %s rooms, %s m²) %s\n",
			report.MostExpensive.Price,
			report.MostExpensive.Type,
			report.MostExpensive.Rooms,
			report.MostExpensive.Surface,
			truncateText(report.MostExpensive.Description, 40),
		)
	}
}

// parsePrice accepts "500000", "500 000" and "1250.50"; anything else is not a price.
func parsePrice(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
