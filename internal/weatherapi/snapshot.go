package weatherapi

// Derived views over a decoded Snapshot. All of these are pure reads:
// they can be called any number of times and never mutate the snapshot.

// CurrentConditions returns the conditions observed at fetch time.
func (s *Snapshot) CurrentConditions() Current {
	return s.Current
}

// Days returns the forecast days in provider order (today first).
// Empty when the payload carried no forecast section.
func (s *Snapshot) Days() []ForecastDay {
	if s.Forecast == nil {
		return nil
	}
	return s.Forecast.Days
}

// HoursOfFirstDay returns the hourly entries of the first forecast day.
// The hourly strip always shows today's breakdown, regardless of which
// day the user is looking at in the daily list.
func (s *Snapshot) HoursOfFirstDay() []HourForecast {
	days := s.Days()
	if len(days) == 0 {
		return nil
	}
	return days[0].Hour
}

// AllHours concatenates the hourly entries across every forecast day,
// preserving day order and hour order within each day.
func (s *Snapshot) AllHours() []HourForecast {
	var hours []HourForecast
	for _, day := range s.Days() {
		hours = append(hours, day.Hour...)
	}
	return hours
}

// FirstDayAstro returns the astronomy block of the first forecast day,
// or nil when no forecast is present.
func (s *Snapshot) FirstDayAstro() *Astro {
	days := s.Days()
	if len(days) == 0 {
		return nil
	}
	astro := days[0].Astro
	return &astro
}
