package handoff

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
)

// CookieFactory keeps handoff values inside the signed session cookie.
type CookieFactory struct{}

// NewCookieFactory returns a Factory for the cookie backend.
func NewCookieFactory() *CookieFactory { return &CookieFactory{} }

// For implements Factory.
func (CookieFactory) For(c echo.Context) domain.HandoffStore {
	return &cookieStore{c: c}
}

type cookieStore struct {
	c echo.Context
}

func (s *cookieStore) Get(_ context.Context, key string) (string, bool, error) {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return "", false, fmt.Errorf("load session: %w", err)
	}
	v, ok := sess.Values[key].(string)
	return v, ok, nil
}

func (s *cookieStore) Set(_ context.Context, key, value string) error {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	sess.Values[key] = value
	return save(s.c)
}

func (s *cookieStore) Remove(_ context.Context, key string) error {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if _, ok := sess.Values[key]; !ok {
		return nil
	}
	delete(sess.Values, key)
	return save(s.c)
}
