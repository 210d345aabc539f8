package session

import "errors"

var ErrSessionNotFound = errors.New("session not found or expired")

// Store defines the session data-access contract.
// Services depend ONLY on this interface.
type Store interface {
	Create(portal, idNumber string, walletBalance int64) (*Session, error)

	// Get returns a snapshot; changing it does not change the stored session.
	Get(id string) (*Session, error)

	// Update runs fn on a working copy and keeps the copy only when fn
	// returns nil, so a failed action never leaves partial changes.
	Update(id string, fn func(s *Session) error) (*Session, error)

	Delete(id string) error
}
