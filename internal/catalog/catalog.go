package catalog

import (
	exterrors "github.com/alexisbeaulieu97/extdeck/pkg/errors"
)

// ErrNotFound is returned (wrapped) when no item has the requested name.
var ErrNotFound = exterrors.ErrNotFound

// Catalog is the ordered, in-memory extension list.
//
// Order is the load order. Toggle mutates in place and Remove only shrinks,
// so relative positions never change.
type Catalog struct {
	items []Item
}

// New returns a catalog holding a copy of items.
func New(items []Item) *Catalog {
	c := &Catalog{}
	c.Load(items)
	return c
}

// Load replaces the catalog contents wholesale.
func (c *Catalog) Load(items []Item) {
	c.items = make([]Item, len(items))
	copy(c.items, items)
}

// Items returns a copy of the catalog in order.
func (c *Catalog) Items() []Item {
	result := make([]Item, len(c.items))
	copy(result, c.items)
	return result
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Find returns the item with the given name.
func (c *Catalog) Find(name string) (Item, error) {
	i := c.indexOf(name)
	if i < 0 {
		return Item{}, notFound(name)
	}
	return c.items[i], nil
}

// Toggle flips IsActive on the named item.
func (c *Catalog) Toggle(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return notFound(name)
	}
	c.items[i].IsActive = !c.items[i].IsActive
	return nil
}

// Remove deletes the named item, keeping the order of the rest.
func (c *Catalog) Remove(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return notFound(name)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *Catalog) indexOf(name string) int {
	for i := range c.items {
		if c.items[i].Name == name {
			return i
		}
	}
	return -1
}

func notFound(name string) error {
	return exterrors.NewNotFoundError("extension", name)
}
