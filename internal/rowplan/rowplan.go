// Package rowplan turns a forecast snapshot into the row plan for the
// two-section forecast list: section 0 is a single row hosting the
// horizontally scrolled hourly strip, section 1 has one row per forecast
// day. The plan is a stateless projection, rebuilt from scratch for every
// new snapshot.
package rowplan

import (
	"time"

	"github.com/skycast/skycast/internal/weatherapi"
)

// MaxStripHours bounds the hourly strip. It is a hard ceiling on
// rendering cost, not pagination: hours beyond it are unreachable.
const MaxStripHours = 24

// RowKind discriminates the two row shapes in the plan.
type RowKind int

const (
	RowHourlyStrip RowKind = iota
	RowDaily
)

// Row is one list entry. Hours is populated for RowHourlyStrip rows,
// Day and Label for RowDaily rows.
type Row struct {
	Kind  RowKind
	Hours []weatherapi.HourForecast
	Day   *weatherapi.ForecastDay
	Label string
}

// Plan is the full two-section row layout for one snapshot.
type Plan struct {
	HourlyStrip Row
	DailyRows   []Row
}

// Build computes the row plan for a snapshot.
func Build(s *weatherapi.Snapshot) Plan {
	hours := s.HoursOfFirstDay()
	if len(hours) > MaxStripHours {
		hours = hours[:MaxStripHours]
	}

	days := s.Days()
	dailyRows := make([]Row, 0, len(days))
	for i := range days {
		day := days[i]
		dailyRows = append(dailyRows, Row{
			Kind:  RowDaily,
			Day:   &day,
			Label: WeekdayLabel(day.DateEpoch),
		})
	}

	return Plan{
		HourlyStrip: Row{Kind: RowHourlyStrip, Hours: hours},
		DailyRows:   dailyRows,
	}
}

// Rows flattens the plan in display order: the strip row first, then the
// daily rows.
func (p Plan) Rows() []Row {
	rows := make([]Row, 0, 1+len(p.DailyRows))
	rows = append(rows, p.HourlyStrip)
	rows = append(rows, p.DailyRows...)
	return rows
}

// WeekdayLabel formats a day epoch as its weekday name.
func WeekdayLabel(epoch int64) string {
	return time.Unix(epoch, 0).Weekday().String()
}
