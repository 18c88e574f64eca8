// Package conditions classifies free-text weather descriptions into the
// closed set of icon categories the renderer draws from. The provider's
// condition texts overlap lexically ("Patchy light rain", "Thundery
// outbreaks possible", "Partly cloudy"), so classification is an ordered
// substring scan where the first matching rule wins.
package conditions

import "strings"

// Category is one icon bucket. It is never an error: text that matches
// no rule falls through to Clear.
type Category int

const (
	Clear Category = iota
	PartlyCloudy
	Cloudy
	LightRain
	Rain
	HeavyRain
	Snow
	Thunderstorm
	Fog
	Windy
)

// String returns the icon asset name for the category.
func (c Category) String() string {
	switch c {
	case PartlyCloudy:
		return "partlycloudy"
	case Cloudy:
		return "cloud"
	case LightRain:
		return "lightrain"
	case Rain:
		return "rain"
	case HeavyRain:
		return "heavyrain"
	case Snow:
		return "snow"
	case Thunderstorm:
		return "thunderstorm"
	case Fog:
		return "fog"
	case Windy:
		return "windy"
	default:
		return "clear"
	}
}

// rule maps a set of substrings to a category. Order in the rules table
// is load-bearing: PartlyCloudy must be checked before Cloudy, and the
// rain rules before Thunderstorm so "patchy light rain with thunder"
// stays LightRain.
type rule struct {
	category Category
	keywords []string
}

var rules = []rule{
	{Clear, []string{"sunny", "clear"}},
	{PartlyCloudy, []string{"partly cloudy", "partly sunny"}},
	{Cloudy, []string{"cloudy", "overcast"}},
	{LightRain, []string{"light rain", "patchy rain"}},
	{Rain, []string{"moderate rain", "heavy rain"}},
	{HeavyRain, []string{"torrential rain", "violent rain", "shower"}},
	{Snow, []string{"sleet", "ice pellets", "freezing rain", "freezing drizzle", "snow", "blizzard"}},
	{Thunderstorm, []string{"thundery", "thunder"}},
	{Fog, []string{"fog", "foggy", "mist", "haze"}},
	{Windy, []string{"windy"}},
}

// Classify maps a condition description to its icon category. Matching
// is case-insensitive substring containment; unmatched text is Clear.
func Classify(text string) Category {
	text = strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category
			}
		}
	}
	return Clear
}
