package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/skycast/skycast/internal/weatherapi"
)

// placeItem wraps a search result for use in a list
type placeItem struct {
	place weatherapi.Place
}

// FilterValue implements list.Item
func (p placeItem) FilterValue() string {
	return p.place.Name + " " + p.place.Region
}

// Title implements list.DefaultItem
func (p placeItem) Title() string {
	if p.place.Region == "" {
		return p.place.Name
	}
	return fmt.Sprintf("%s, %s", p.place.Name, p.place.Region)
}

// Description implements list.DefaultItem
func (p placeItem) Description() string {
	return fmt.Sprintf("%s (%.2f, %.2f)", p.place.Country, p.place.Lat, p.place.Lon)
}

// createPlaceList creates a list.Model from search results
func createPlaceList(places []weatherapi.Place, width, height int) list.Model {
	items := make([]list.Item, len(places))
	for i, place := range places {
		items[i] = placeItem{place: place}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Location"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
