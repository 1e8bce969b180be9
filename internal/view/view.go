// Package view projects catalog items into display cards and paints them.
//
// Render is stateless: every call builds a fresh Page, and each card's
// callbacks capture nothing but the item name.
package view

import (
	"github.com/alexisbeaulieu97/extdeck/internal/catalog"
	"github.com/alexisbeaulieu97/extdeck/internal/filter"
)

// Handlers receives the interactions wired into each card.
type Handlers interface {
	OnToggleItem(name string)
	OnRemoveItem(name string)
}

// Card is the display element for one item.
type Card struct {
	Name        string
	Logo        string
	Description string
	Active      bool

	toggle func()
	remove func()
}

// Toggle fires the card's activation control.
func (c Card) Toggle() {
	if c.toggle != nil {
		c.toggle()
	}
}

// Remove fires the card's removal control.
func (c Card) Remove() {
	if c.remove != nil {
		c.remove()
	}
}

// Page is one full rendering of the filtered list.
type Page struct {
	Cards []Card
}

// Len returns the number of cards.
func (p Page) Len() int {
	return len(p.Cards)
}

// Card returns the card at index, if any.
func (p Page) Card(index int) (Card, bool) {
	if index < 0 || index >= len(p.Cards) {
		return Card{}, false
	}
	return p.Cards[index], true
}

// FilterControl is one filter selector and whether it is the current one.
type FilterControl struct {
	Mode   filter.Mode
	Active bool
}

// FilterControls marks exactly the selector for current as active.
func FilterControls(current filter.Mode) []FilterControl {
	modes := filter.Modes()
	controls := make([]FilterControl, len(modes))
	for i, mode := range modes {
		controls[i] = FilterControl{Mode: mode, Active: mode == current}
	}
	return controls
}

// Renderer builds pages. The zero value is ready to use.
type Renderer struct{}

// Render discards any previous page and builds one card per item.
func (Renderer) Render(items []catalog.Item, handlers Handlers) Page {
	cards := make([]Card, len(items))
	for i, item := range items {
		name := item.Name
		card := Card{
			Name:        item.Name,
			Logo:        item.Logo,
			Description: item.Description,
			Active:      item.IsActive,
		}
		if handlers != nil {
			card.toggle = func() { handlers.OnToggleItem(name) }
			card.remove = func() { handlers.OnRemoveItem(name) }
		}
		cards[i] = card
	}
	return Page{Cards: cards}
}
