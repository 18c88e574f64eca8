package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/skycast/skycast/internal/weatherapi"
)

// renderHourlyStrip renders the capped horizontal hour sequence from the
// section-0 row of the plan. Cells beyond the terminal width are clipped
// by lipgloss; the cap itself lives in the rowplan package.
func (m Model) renderHourlyStrip() string {
	hours := m.plan.HourlyStrip.Hours
	if len(hours) == 0 {
		return mutedStyle.Render("No hourly data available")
	}

	cells := make([]string, 0, len(hours))
	for _, hour := range hours {
		cells = append(cells, renderHourCell(hour))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if m.width > 0 {
		strip = lipgloss.NewStyle().MaxWidth(m.width).Render(strip)
	}
	return strip
}

// renderHourCell renders one hour: clock time, glyph, temperature.
func renderHourCell(hour weatherapi.HourForecast) string {
	return hourCellStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		mutedStyle.Render(hourLabel(hour)),
		glyphFor(hour.Condition.Text),
		valueStyle.Render(fmt.Sprintf("%.0f°", hour.TempC)),
	))
}

// hourLabel formats an hour entry's clock time.
func hourLabel(hour weatherapi.HourForecast) string {
	if t, err := time.Parse("2006-01-02 15:04", hour.Time); err == nil {
		return t.Format("15:04")
	}
	return time.Unix(hour.TimeEpoch, 0).Format("15:04")
}
