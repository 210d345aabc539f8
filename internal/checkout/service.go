package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/cart"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientBalance  = errors.New("insufficient wallet balance")
	ErrItemUnavailable      = errors.New("menu item is out of stock")
	ErrCheckoutClosed       = errors.New("checkout is not open")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

type Service struct {
	sessions   session.Store
	menu       *menu.Service
	taxPercent int64
	now        func() time.Time
}

func NewService(sessions session.Store, menuService *menu.Service, taxPercent int64) *Service {
	return &Service{
		sessions:   sessions,
		menu:       menuService,
		taxPercent: taxPercent,
		now:        time.Now,
	}
}

// --------------------------------------------------
// Cart sheet
// --------------------------------------------------

func (s *Service) Sheet(sessionID string) (*SheetView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return newSheetView(sess, s.taxPercent), nil
}

func (s *Service) SetSheetOpen(sessionID string, open bool) (*SheetView, error) {
	return s.updateSheet(sessionID, func(sess *session.Session) error {
		sess.CartOpen = open
		return nil
	})
}

// AddToCart is the Add button of a menu card. Out of stock items are
// refused here, the cart itself accepts anything.
func (s *Service) AddToCart(sessionID, itemID string) (cart.Item, *SheetView, error) {
	item, err := s.menu.Get(itemID)
	if err != nil {
		return cart.Item{}, nil, err
	}
	if !item.Available {
		return cart.Item{}, nil, ErrItemUnavailable
	}

	var added cart.Item
	view, err := s.updateSheet(sessionID, func(sess *session.Session) error {
		if !sess.Cart.CanAdd(item.ID) {
			return cart.ErrInvalidQuantity
		}
		added = sess.Cart.Add(item)
		return nil
	})
	if err != nil {
		return cart.Item{}, nil, err
	}
	return added, view, nil
}

func (s *Service) UpdateQuantity(sessionID, itemID string, quantity int) (*SheetView, error) {
	return s.updateSheet(sessionID, func(sess *session.Session) error {
		return sess.Cart.UpdateQuantity(itemID, quantity)
	})
}

func (s *Service) Increment(sessionID, itemID string) (*SheetView, error) {
	return s.updateSheet(sessionID, func(sess *session.Session) error {
		return sess.Cart.Increment(itemID)
	})
}

func (s *Service) Decrement(sessionID, itemID string) (*SheetView, error) {
	return s.updateSheet(sessionID, func(sess *session.Session) error {
		return sess.Cart.Decrement(itemID)
	})
}

func (s *Service) Remove(sessionID, itemID string) (*SheetView, error) {
	return s.updateSheet(sessionID, func(sess *session.Session) error {
		return sess.Cart.Remove(itemID)
	})
}

// --------------------------------------------------
// Checkout dialog
// --------------------------------------------------

// ProceedToCheckout opens the dialog unless the cart is empty.
func (s *Service) ProceedToCheckout(sessionID string) (*DialogView, error) {
	return s.updateDialog(sessionID, func(sess *session.Session) error {
		if sess.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		sess.CheckoutOpen = true
		return nil
	})
}

func (s *Service) Dialog(sessionID string) (*DialogView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.CheckoutOpen {
		return nil, ErrCheckoutClosed
	}
	return newDialogView(sess, s.taxPercent), nil
}

func (s *Service) SelectPaymentMethod(sessionID, method string) (*DialogView, error) {
	m, err := ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	return s.updateDialog(sessionID, func(sess *session.Session) error {
		if !sess.CheckoutOpen {
			return ErrCheckoutClosed
		}
		sess.PaymentMethod = string(m)
		return nil
	})
}

// Cancel closes the dialog and leaves the sheet as it was.
func (s *Service) Cancel(sessionID string) error {
	_, err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.CheckoutOpen = false
		return nil
	})
	return err
}

// PlaceOrder simulates payment. A wallet payment is refused when the cart
// subtotal is above the balance. On success both the dialog and the sheet
// close; the cart keeps its items and the wallet is not debited.
// An empty method uses the one selected in the dialog.
func (s *Service) PlaceOrder(sessionID, method string) (*Receipt, error) {
	var receipt *Receipt

	_, err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if !sess.CheckoutOpen {
			return ErrCheckoutClosed
		}
		if sess.Cart.IsEmpty() {
			return ErrEmptyCart
		}

		m := methodOf(sess.PaymentMethod)
		if method != "" {
			parsed, err := ParsePaymentMethod(method)
			if err != nil {
				return err
			}
			m = parsed
		}

		subtotal := sess.Cart.Total()
		if m == PaymentWallet && subtotal > sess.WalletBalance {
			return ErrInsufficientBalance
		}

		sess.PaymentMethod = string(m)
		sess.CheckoutOpen = false
		sess.CartOpen = false

		receipt = &Receipt{
			OrderID:       uuid.New().String(),
			PaymentMethod: m,
			Bill:          NewBill(subtotal, s.taxPercent),
			ItemsCount:    sess.Cart.ItemsCount(),
			PlacedAt:      s.now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (s *Service) updateSheet(sessionID string, fn func(*session.Session) error) (*SheetView, error) {
	sess, err := s.sessions.Update(sessionID, fn)
	if err != nil {
		return nil, err
	}
	return newSheetView(sess, s.taxPercent), nil
}

func (s *Service) updateDialog(sessionID string, fn func(*session.Session) error) (*DialogView, error) {
	sess, err := s.sessions.Update(sessionID, fn)
	if err != nil {
		return nil, err
	}
	return newDialogView(sess, s.taxPercent), nil
}
