package objectstore

import (
	"context"
	"sync"
	"time"
)

type AuthorizeFunc func(ctx context.Context) error

// Session caches a successful authorization until it expires.
type Session struct {
	mu        sync.Mutex
	ttl       time.Duration
	expiresAt time.Time
	authorize AuthorizeFunc
	now       func() time.Time
}

func NewSession(ttl time.Duration, authorize AuthorizeFunc) *Session {
	return &Session{
		ttl:       ttl,
		authorize: authorize,
		now:       time.Now,
	}
}

func (s *Session) Ensure(ctx context.Context, force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force && s.now().Before(s.expiresAt) {
		return nil
	}

	if err := s.authorize(ctx); err != nil {
		s.expiresAt = time.Time{}

		return err
	}

	s.expiresAt = s.now().Add(s.ttl)

	return nil
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.expiresAt
}

// Do runs op inside a fresh session. An authorization failure forces one
// re-authorization and a single retry.
func Do[T any](ctx context.Context, s *Session, isAuthErr func(error) bool, op func(context.Context) (T, error)) (T, error) {
	var zero T

	if err := s.Ensure(ctx, false); err != nil {
		return zero, err
	}

	res, err := op(ctx)
	if err == nil || !isAuthErr(err) {
		return res, err
	}

	if err := s.Ensure(ctx, true); err != nil {
		return zero, err
	}

	return op(ctx)
}
