package ui

import (
	"fmt"
	"strings"

	"github.com/skycast/skycast/internal/rowplan"
)

// renderDailyRows renders the section-1 rows: one line per forecast day
// with weekday, glyph and high/low temperatures.
func (m Model) renderDailyRows() string {
	if len(m.plan.DailyRows) == 0 {
		return mutedStyle.Render("No daily forecast available")
	}

	lines := make([]string, 0, len(m.plan.DailyRows))
	for _, row := range m.plan.DailyRows {
		lines = append(lines, renderDailyRow(row))
	}

	return strings.Join(lines, "\n")
}

// renderDailyRow renders one daily row from the plan.
func renderDailyRow(row rowplan.Row) string {
	day := row.Day.Day
	return fmt.Sprintf("%s %s  %s %s",
		dayLabelStyle.Render(row.Label),
		glyphFor(day.Condition.Text),
		highTempStyle.Render(fmt.Sprintf("%3.0f°", day.MaxtempC)),
		lowTempStyle.Render(fmt.Sprintf("%3.0f°", day.MintempC)),
	)
}
