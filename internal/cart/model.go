package cart

import "github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"

// Item is a menu entry with the quantity the student wants.
// Quantity is at least 1 for as long as the item is in a cart.
type Item struct {
	menu.Item
	Quantity int `json:"quantity"`
}

// LineTotal is price × quantity.
func (i Item) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}
