package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/skycast/skycast/internal/history"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/rowplan"
	"github.com/skycast/skycast/internal/weatherapi"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLocating AppState = iota // Waiting for the first coordinate fix
	StateSearch                   // Manual location search
	StateResults                  // Show list of matching places
	StateLoading                  // Fetching the forecast
	StateDisplay                  // Display the forecast
	StateError                    // Error state
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Search
	searchInput textinput.Model
	searchQuery string
	recent      []history.Entry

	// Search results
	places    []weatherapi.Place
	placeList list.Model

	// Collaborators
	client   *weatherapi.Client
	provider location.Provider
	store    history.Store

	// Location fix; only the first provider fix is ever consumed
	fix         *location.Fix
	fixConsumed bool

	// Forecast data: the snapshot is replaced wholesale on each
	// successful fetch, and the row plan is rebuilt from scratch
	snapshot *weatherapi.Snapshot
	plan     rowplan.Plan
	days     int

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(client *weatherapi.Client, provider location.Provider, store history.Store, days int) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a city (e.g. Lisbon or Portland, OR)..."
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:       StateLocating,
		searchInput: ti,
		client:      client,
		provider:    provider,
		store:       store,
		days:        days,
		spinner:     s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, awaitFix(m.provider), loadRecent(m.store))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m.placeList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case fixMsg:
		// Only the first fix triggers a fetch; anything after is dropped
		if m.fixConsumed {
			return m, nil
		}
		if msg.err != nil {
			// Geolocation is best-effort; fall back to manual search
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		m.fixConsumed = true
		m.fix = msg.fix
		m.state = StateLoading
		return m, fetchForecast(m.client, msg.fix.Latitude, msg.fix.Longitude, m.days)

	case forecastMsg:
		if msg.err != nil {
			// Keep the previous snapshot, if any; a failed fetch never
			// leaves a half-applied one
			m.err = fmt.Errorf("fetching forecast: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.plan = rowplan.Build(msg.snapshot)
		m.state = StateDisplay
		name := msg.snapshot.Location.Name
		if msg.snapshot.Location.Region != "" {
			name = fmt.Sprintf("%s, %s", name, msg.snapshot.Location.Region)
		}
		return m, recordLocation(m.store, name, msg.snapshot.Location.Lat, msg.snapshot.Location.Lon)

	case searchResultsMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("searching places: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		if len(msg.places) == 0 {
			m.err = fmt.Errorf("no places found for %q", msg.query)
			m.state = StateError
			return m, nil
		}
		m.places = msg.places
		m.placeList = createPlaceList(msg.places, m.width-4, m.height-10)
		m.state = StateResults
		return m, nil

	case recentMsg:
		m.recent = msg.entries
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if keyMsg.String() == "q" && m.state != StateSearch {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StateResults:
			return m.handlePlaceList(msg)

		case StateDisplay:
			// 's' to search a different location
			if keyMsg.String() == "s" {
				m.state = StateSearch
				m.searchInput.SetValue("")
				m.searchInput.Focus()
				return m, tea.Batch(textinput.Blink, loadRecent(m.store))
			}
			// 'r' to refetch for the same coordinate
			if keyMsg.String() == "r" && m.fix != nil {
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick,
					fetchForecast(m.client, m.fix.Latitude, m.fix.Longitude, m.days))
			}
			return m, nil

		case StateError:
			// Any key returns to search
			m.state = StateSearch
			m.err = nil
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateLocating, StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateResults:
		m.placeList, cmd = m.placeList.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear error when typing
	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	// Digits 1-5 pick a recent location directly
	if len(m.recent) > 0 && m.searchInput.Value() == "" {
		key := msg.String()
		if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
			idx := int(key[0] - '1')
			if idx < len(m.recent) {
				entry := m.recent[idx]
				m.fix = &location.Fix{
					Latitude:  entry.Latitude,
					Longitude: entry.Longitude,
					Name:      entry.Name,
				}
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick,
					fetchForecast(m.client, entry.Latitude, entry.Longitude, m.days))
			}
		}
	}

	// Handle Enter key
	if msg.Type == tea.KeyEnter {
		query := m.searchInput.Value()
		if query == "" {
			return m, nil
		}
		m.searchQuery = query
		m.err = nil
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, searchPlaces(m.client, query))
	}

	// Update text input
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handlePlaceList handles keyboard input in the results state
func (m Model) handlePlaceList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.placeList.SelectedItem().(placeItem); ok {
				m.fix = &location.Fix{
					Latitude:  item.place.Lat,
					Longitude: item.place.Lon,
					Name:      item.place.Name,
				}
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick,
					fetchForecast(m.client, item.place.Lat, item.place.Lon, m.days))
			}
		}
		// 's' or Esc to go back to search
		if keyMsg.String() == "s" || keyMsg.Type == tea.KeyEsc {
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	m.placeList, cmd = m.placeList.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLocating:
		return m.viewLocating()
	case StateSearch:
		return m.viewSearch()
	case StateResults:
		return m.viewResults()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLocating renders the initial geolocation screen
func (m Model) viewLocating() string {
	title := titleStyle.Render("⛅ Skycast")
	status := mutedStyle.Render("Detecting your location...")
	help := helpStyle.Render("Ctrl+C: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
		"",
		help,
	)
}

// viewSearch renders the location search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("⛅ Skycast")
	subtitle := mutedStyle.Render("Weather forecast in your terminal")

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(64).
		Render(m.searchInput.View())

	var sections []string
	sections = append(sections, title, subtitle, "", searchBox)

	if m.err != nil {
		sections = append(sections, "", errorStyle.Render("✗ "+m.err.Error()))
	}

	if len(m.recent) > 0 {
		sections = append(sections, "", labelStyle.Render("Recent locations:"))
		for i, entry := range m.recent {
			sections = append(sections, fmt.Sprintf("  %s %s",
				accentStyle.Render(fmt.Sprintf("%d.", i+1)),
				valueStyle.Render(entry.Name)))
		}
	}

	help := helpStyle.Render("Enter: Search • 1-5: Recent location • Ctrl+C: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewResults renders the place selection list
func (m Model) viewResults() string {
	title := titleStyle.Render("⛅ Locations")
	subtitle := mutedStyle.Render(fmt.Sprintf("Found %d places for %q", len(m.places), m.searchQuery))

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • S/Esc: Back to search • Q: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		m.placeList.View(),
		"",
		help,
	)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	where := ""
	if m.fix != nil && m.fix.Name != "" {
		where = fmt.Sprintf(" for %s", m.fix.Name)
	}
	status := mutedStyle.Render(fmt.Sprintf("Fetching forecast%s...", where))

	return fmt.Sprintf("%s %s", m.spinner.View(), status)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to return to search • Q: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		errorMsg,
		"",
		help,
	)
}

// viewDisplay renders the forecast: current conditions header, the
// hourly strip, then one row per forecast day.
func (m Model) viewDisplay() string {
	if m.snapshot == nil {
		return "No forecast loaded"
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	sections = append(sections,
		sectionHeaderStyle.Render("Hourly"),
		m.renderHourlyStrip(),
	)

	sections = append(sections,
		sectionHeaderStyle.Render(fmt.Sprintf("%d-Day Forecast", len(m.plan.DailyRows))),
		m.renderDailyRows(),
	)

	help := helpStyle.Render("S: New search • R: Refresh • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
