package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skycast/skycast/internal/history"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/weatherapi"
)

// Message types for async operations

// fixMsg is sent when the location provider delivers a coordinate fix
type fixMsg struct {
	fix *location.Fix
	err error
}

// forecastMsg is sent when a forecast has been fetched and decoded
type forecastMsg struct {
	snapshot *weatherapi.Snapshot
	err      error
}

// searchResultsMsg is sent when a place search completes
type searchResultsMsg struct {
	query  string
	places []weatherapi.Place
	err    error
}

// recentMsg is sent when recent locations have been loaded
type recentMsg struct {
	entries []history.Entry
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// awaitFix waits for the first coordinate fix from the location provider.
// The provider is stopped after the first fix; later fixes are dropped.
func awaitFix(provider location.Provider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		fix, err := location.FirstFix(ctx, provider)
		return fixMsg{fix: fix, err: err}
	}
}

// fetchForecast fetches the multi-day forecast for a coordinate.
func fetchForecast(client *weatherapi.Client, lat, lon float64, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snapshot, err := client.Forecast(ctx, lat, lon, days)
		return forecastMsg{snapshot: snapshot, err: err}
	}
}

// searchPlaces resolves a free-text query to candidate places.
func searchPlaces(client *weatherapi.Client, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		places, err := client.Search(ctx, query)
		return searchResultsMsg{query: query, places: places, err: err}
	}
}

// loadRecent loads recently used locations from the history store.
// History is best-effort: a read failure just yields an empty list.
func loadRecent(store history.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return recentMsg{}
		}
		entries, err := store.Recent(5)
		if err != nil {
			return recentMsg{}
		}
		return recentMsg{entries: entries}
	}
}

// recordLocation persists a fetched location in the history store.
func recordLocation(store history.Store, name string, lat, lon float64) tea.Cmd {
	return func() tea.Msg {
		if store != nil {
			store.Record(name, lat, lon)
		}
		return nil
	}
}
