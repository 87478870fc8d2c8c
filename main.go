package main

import (
	"fmt"
	"os"

	"immo-map/api"
	"immo-map/config"
	"immo-map/console"
	"immo-map/location"
	"immo-map/ui"
	"immo-map/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}
	utils.Info("Immobilier app starting | api=%s lang=%s", cfg.APIBaseURL, cfg.Language)

	app := ui.NewApp(
		api.NewClient(cfg.APIBaseURL, nil),
		location.NewStatic(cfg.LocationLat, cfg.LocationLon),
		cfg.ZoomDelta,
	)
	defer app.Close()

	term := console.New(app, cfg.Language, cfg.ExportPath, os.Stdout)
	if err := term.Run(os.Stdin); err != nil {
		utils.Error("Input error: %v", err)
		app.Close()
		os.Exit(1)
	}

	printSummary(len(app.State().Markers))
}

func printSummary(markers int) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════╗")
	fmt.Println("║                SESSION CLOSED                ║")
	fmt.Println("╠══════════════════════════════════════════════╣")
	fmt.Printf("║  Markers on map : %-26d║\n", markers)
	fmt.Println("╚══════════════════════════════════════════════╝")
	fmt.Println()
}
