package session

import (
	"time"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/cart"
)

// Session is everything one browser session owns between login and logout.
type Session struct {
	ID        string
	Portal    string
	IDNumber  string
	CreatedAt time.Time
	LastSeen  time.Time

	Cart          *cart.Cart
	WalletBalance int64

	CartOpen      bool
	CheckoutOpen  bool
	PaymentMethod string
}

func (s *Session) clone() *Session {
	cp := *s
	if s.Cart != nil {
		cp.Cart = s.Cart.Clone()
	} else {
		cp.Cart = cart.New()
	}
	return &cp
}
