package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/cart"
)

type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *InMemoryStore) Create(portal, idNumber string, walletBalance int64) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:            uuid.New().String(),
		Portal:        portal,
		IDNumber:      idNumber,
		CreatedAt:     now,
		LastSeen:      now,
		Cart:          cart.New(),
		WalletBalance: walletBalance,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess.clone(), nil
}

func (s *InMemoryStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.LastSeen = s.now()
	return sess.clone(), nil
}

func (s *InMemoryStore) Update(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	working := sess.clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	working.ID = sess.ID
	working.LastSeen = s.now()
	s.sessions[id] = working

	return working.clone(), nil
}

func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictExpired drops sessions idle for longer than the TTL.
func (s *InMemoryStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	now := s.now()
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor evicts expired sessions every interval until ctx is done.
func (s *InMemoryStore) RunJanitor(ctx context.Context, interval time.Duration, onEvict func(n int)) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.EvictExpired(); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}

// lookup must be called with mu held.
func (s *InMemoryStore) lookup(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *InMemoryStore) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LastSeen) > s.ttl
}
