package ui

import "github.com/skycast/skycast/internal/conditions"

// glyphs maps each icon category to the glyph drawn in a cell. The
// render layer never inspects condition text itself; classification is
// owned by the conditions package.
var glyphs = map[conditions.Category]string{
	conditions.Clear:        "☀",
	conditions.PartlyCloudy: "⛅",
	conditions.Cloudy:       "☁",
	conditions.LightRain:    "🌦",
	conditions.Rain:         "🌧",
	conditions.HeavyRain:    "⛈",
	conditions.Snow:         "❄",
	conditions.Thunderstorm: "🌩",
	conditions.Fog:          "🌫",
	conditions.Windy:        "🌬",
}

// glyphFor returns the glyph for a condition description.
func glyphFor(text string) string {
	if g, ok := glyphs[conditions.Classify(text)]; ok {
		return g
	}
	return glyphs[conditions.Clear]
}
