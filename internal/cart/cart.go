package cart

import (
	"errors"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"
)

var (
	ErrNotInCart       = errors.New("item is not in the cart")
	ErrInvalidQuantity = errors.New("quantity must be between 0 and 99")
)

// MaxQuantity bounds a single line so line totals stay far from overflow.
const MaxQuantity = 99

// Cart keeps items in the order they were first added, unique by menu id.
// The zero value is an empty cart. A Cart is not safe for concurrent use;
// callers serialize access per session.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an item already in the cart, or appends it
// with quantity 1. Availability is not checked here. A line already at
// MaxQuantity is returned unchanged; use CanAdd to report that to the caller.
func (c *Cart) Add(item menu.Item) Item {
	if i := c.indexOf(item.ID); i >= 0 {
		if c.items[i].Quantity < MaxQuantity {
			c.items[i].Quantity++
		}
		return c.items[i]
	}

	added := Item{Item: item, Quantity: 1}
	c.items = append(c.items, added)
	return added
}

// UpdateQuantity sets the quantity of an item; zero removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}

	i := c.indexOf(id)
	if i < 0 {
		return ErrNotInCart
	}

	if quantity == 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return nil
	}

	c.items[i].Quantity = quantity
	return nil
}

// CanAdd reports whether one more unit of id fits in its line.
func (c *Cart) CanAdd(id string) bool {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Quantity < MaxQuantity
	}
	return true
}

func (c *Cart) Increment(id string) error {
	return c.step(id, 1)
}

// Decrement lowers the quantity by one; from 1 it removes the item.
func (c *Cart) Decrement(id string) error {
	return c.step(id, -1)
}

func (c *Cart) Remove(id string) error {
	return c.UpdateQuantity(id, 0)
}

func (c *Cart) step(id string, delta int) error {
	i := c.indexOf(id)
	if i < 0 {
		return ErrNotInCart
	}
	return c.UpdateQuantity(id, c.items[i].Quantity+delta)
}

// Get returns the cart entry for a menu id.
func (c *Cart) Get(id string) (Item, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price × quantity over all entries.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ItemsCount is the sum of quantities, shown on the cart badge.
func (c *Cart) ItemsCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clone() *Cart {
	return &Cart{items: c.Items()}
}

func (c *Cart) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
