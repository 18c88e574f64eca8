package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/skycast/skycast/internal/history"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/ui"
	"github.com/skycast/skycast/internal/weatherapi"
)

func main() {
	// Load environment variables from .env file, if present
	godotenv.Load()

	lat := flag.Float64("lat", 0, "Latitude to fetch the forecast for (requires --lon)")
	lon := flag.Float64("lon", 0, "Longitude to fetch the forecast for (requires --lat)")
	query := flag.String("query", "", "Place to fetch the forecast for (e.g. \"Lisbon\")")
	days := flag.Int("days", 7, "Number of forecast days to request")
	flag.Parse()

	flagsSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagsSet[f.Name] = true })

	if flagsSet["lat"] != flagsSet["lon"] {
		fmt.Println("Error: --lat and --lon must be given together.")
		os.Exit(1)
	}

	apiKey := os.Getenv("WEATHERAPI_KEY")
	if apiKey == "" {
		fmt.Println("Error: WEATHERAPI_KEY is not set (get a key at weatherapi.com).")
		os.Exit(1)
	}

	client := weatherapi.NewClient(apiKey, newLogger())

	provider, err := pickProvider(client, flagsSet, *lat, *lon, *query)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// History is optional; the app runs fine without it
	var store history.Store
	if s, err := history.Open(history.DBPath()); err == nil {
		store = s
		defer s.Close()
	}

	p := tea.NewProgram(ui.NewModel(client, provider, store, *days), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// pickProvider chooses the coordinate source: explicit flags beat a place
// query, which beats IP geolocation.
func pickProvider(client *weatherapi.Client, flagsSet map[string]bool, lat, lon float64, query string) (location.Provider, error) {
	if flagsSet["lat"] {
		return &location.Static{Fix: location.Fix{Latitude: lat, Longitude: lon}}, nil
	}

	if query != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		places, err := client.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("resolving --query: %w", err)
		}
		if len(places) == 0 {
			return nil, fmt.Errorf("no places found for %q", query)
		}
		place := places[0]
		return &location.Static{Fix: location.Fix{
			Latitude:  place.Lat,
			Longitude: place.Lon,
			Name:      place.Name,
		}}, nil
	}

	return location.NewIPLocator(), nil
}

// newLogger returns a file logger when SKYCAST_DEBUG is set, otherwise a
// discarding one. The TUI owns stdout, so logs never go there.
func newLogger() *slog.Logger {
	if os.Getenv("SKYCAST_DEBUG") == "" {
		return slog.New(slog.DiscardHandler)
	}
	f, err := os.OpenFile("skycast.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
