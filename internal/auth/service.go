package auth

import (
	"errors"
	"fmt"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/money"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

var (
	ErrMissingCredentials = errors.New("missing id number or password")
	ErrPortalUnavailable  = errors.New("portal is not available yet")
	ErrUnknownPortal      = errors.New("unknown portal")
)

const (
	menuPath   = "/menu"
	portalPath = "/"
)

type Service struct {
	sessions      session.Store
	signer        *TokenSigner
	walletBalance int64
}

func NewService(sessions session.Store, signer *TokenSigner, walletBalance int64) *Service {
	return &Service{
		sessions:      sessions,
		signer:        signer,
		walletBalance: walletBalance,
	}
}

func (s *Service) Portals() []Portal {
	out := make([]Portal, len(Portals))
	copy(out, Portals)
	return out
}

// LoginForm is shown after a portal card is selected.
func (s *Service) LoginForm(portal string) (*LoginForm, error) {
	p, err := findPortal(portal)
	if err != nil {
		return nil, err
	}

	fields := make([]FormField, len(credentialFields))
	copy(fields, credentialFields)

	return &LoginForm{
		Portal: p,
		Fields: fields,
		Submit: "Login",
		Back:   "Back",
	}, nil
}

// LOGIN
// Credentials are only checked for presence. Only the student portal
// starts a session; the others are not built yet.
func (s *Service) Login(portal, idNumber, password string) (*LoginResult, error) {
	if idNumber == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	p, err := findPortal(portal)
	if err != nil {
		return nil, err
	}

	if p.Type != PortalStudent {
		return nil, ErrPortalUnavailable
	}

	sess, err := s.sessions.Create(string(p.Type), idNumber, s.walletBalance)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, exp, err := s.signer.GenerateToken(sess.ID, idNumber, string(p.Type))
	if err != nil {
		_ = s.sessions.Delete(sess.ID)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: exp.Unix(),
		Redirect:  menuPath,
	}, nil
}

// LOGOUT discards the session together with its cart.
func (s *Service) Logout(sessionID string) (string, error) {
	if err := s.sessions.Delete(sessionID); err != nil {
		return "", err
	}
	return portalPath, nil
}

func (s *Service) Header(sessionID string) (*Header, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	return &Header{
		Title:              "Campus Canteen",
		Subtitle:           "Order your favorite food",
		IDNumber:           sess.IDNumber,
		WalletBalance:      sess.WalletBalance,
		WalletBalanceLabel: money.Format(sess.WalletBalance),
		CartBadge:          sess.Cart.ItemsCount(),
	}, nil
}

func findPortal(portal string) (Portal, error) {
	for _, p := range Portals {
		if string(p.Type) == portal {
			return p, nil
		}
	}
	return Portal{}, ErrUnknownPortal
}
