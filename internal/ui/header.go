package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the current-conditions card: place, condition
// text, the big temperature, and the humidity / wind / feels-like row.
func (m Model) renderHeader() string {
	loc := m.snapshot.Location
	current := m.snapshot.CurrentConditions()

	place := loc.Name
	if loc.Region != "" {
		place = fmt.Sprintf("%s, %s", loc.Name, loc.Region)
	}

	details := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderDetail("Humidity", fmt.Sprintf("%d%%", current.Humidity)),
		renderDetail("Wind", fmt.Sprintf("%.0f km/h", current.WindKph)),
		renderDetail("Feels like", fmt.Sprintf("%.0f°", current.FeelslikeC)),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		valueStyle.Render(place),
		mutedStyle.Render(current.Condition.Text),
		tempStyle.Render(fmt.Sprintf("%s %.0f°C", glyphFor(current.Condition.Text), current.TempC)),
		"",
		details,
	)

	return headerCardStyle.Render(content)
}

// renderDetail renders one label/value pair of the details row.
func renderDetail(label, value string) string {
	return lipgloss.NewStyle().MarginRight(3).Render(
		lipgloss.JoinVertical(
			lipgloss.Center,
			labelStyle.Render(label),
			valueStyle.Render(value),
		),
	)
}
