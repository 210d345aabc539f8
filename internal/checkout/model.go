package checkout

import (
	"time"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/cart"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/money"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

const (
	emptyCartTitle = "Your cart is empty"
	emptyCartHint  = "Add items from the menu to get started"
)

// Line is one row of the cart sheet.
type Line struct {
	cart.Item
	UnitLabel      string `json:"unit_label"`
	LineTotal      int64  `json:"line_total"`
	LineTotalLabel string `json:"line_total_label"`
}

// SheetView is the cart sheet: its rows, the badge count and the bill.
type SheetView struct {
	Open       bool   `json:"open"`
	Empty      bool   `json:"empty"`
	EmptyTitle string `json:"empty_title,omitempty"`
	EmptyHint  string `json:"empty_hint,omitempty"`
	Items      []Line `json:"items"`
	ItemsCount int    `json:"items_count"`
	Bill       Bill   `json:"bill"`
}

// DialogView is the checkout dialog.
type DialogView struct {
	Open               bool           `json:"open"`
	OrderTotal         int64          `json:"order_total"`
	OrderTotalLabel    string         `json:"order_total_label"`
	WalletBalance      int64          `json:"wallet_balance"`
	WalletBalanceLabel string         `json:"wallet_balance_label"`
	WalletSufficient   bool           `json:"wallet_sufficient"`
	PaymentMethod      PaymentMethod  `json:"payment_method"`
	Methods            []MethodOption `json:"methods"`
}

// Receipt describes a simulated order. It is returned once and never stored.
type Receipt struct {
	OrderID       string        `json:"order_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Bill          Bill          `json:"bill"`
	ItemsCount    int           `json:"items_count"`
	PlacedAt      time.Time     `json:"placed_at"`
}

func newSheetView(s *session.Session, taxPercent int64) *SheetView {
	items := s.Cart.Items()

	view := &SheetView{
		Open:       s.CartOpen,
		Empty:      len(items) == 0,
		Items:      make([]Line, 0, len(items)),
		ItemsCount: s.Cart.ItemsCount(),
		Bill:       NewBill(s.Cart.Total(), taxPercent),
	}
	if view.Empty {
		view.EmptyTitle = emptyCartTitle
		view.EmptyHint = emptyCartHint
	}

	for _, item := range items {
		view.Items = append(view.Items, Line{
			Item:           item,
			UnitLabel:      money.Format(item.Price) + " each",
			LineTotal:      item.LineTotal(),
			LineTotalLabel: money.Format(item.LineTotal()),
		})
	}

	return view
}

func newDialogView(s *session.Session, taxPercent int64) *DialogView {
	subtotal := s.Cart.Total()
	bill := NewBill(subtotal, taxPercent)

	methods := make([]MethodOption, len(Methods))
	copy(methods, Methods)

	return &DialogView{
		Open:               s.CheckoutOpen,
		OrderTotal:         bill.Total,
		OrderTotalLabel:    bill.TotalLabel,
		WalletBalance:      s.WalletBalance,
		WalletBalanceLabel: money.Format(s.WalletBalance),
		WalletSufficient:   s.WalletBalance >= subtotal,
		PaymentMethod:      methodOf(s.PaymentMethod),
		Methods:            methods,
	}
}
