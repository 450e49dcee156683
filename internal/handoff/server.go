package handoff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
)

const sessionIDKey = "sid"

// KV is a server-side key/value backend partitioned by session id.
type KV interface {
	Get(ctx context.Context, sid, key string) (string, bool, error)
	Set(ctx context.Context, sid, key, value string) error
	Remove(ctx context.Context, sid, key string) error
}

// ServerFactory keeps only a random session id in the cookie and the
// handoff values in kv.
type ServerFactory struct {
	kv KV
}

// NewServerFactory returns a Factory backed by kv.
func NewServerFactory(kv KV) *ServerFactory {
	return &ServerFactory{kv: kv}
}

// For implements Factory.
func (f *ServerFactory) For(c echo.Context) domain.HandoffStore {
	return &serverStore{c: c, kv: f.kv}
}

type serverStore struct {
	c  echo.Context
	kv KV
}

// sessionID returns the id stored in the cookie. With create set, a new id
// is issued when the session has none yet.
func (s *serverStore) sessionID(create bool) (string, error) {
	sess, err := session.Get(SessionName, s.c)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if sid, ok := sess.Values[sessionIDKey].(string); ok && sid != "" {
		return sid, nil
	}
	if !create {
		return "", nil
	}
	sid := uuid.NewString()
	sess.Values[sessionIDKey] = sid
	if err := save(s.c); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *serverStore) Get(ctx context.Context, key string) (string, bool, error) {
	sid, err := s.sessionID(false)
	if err != nil || sid == "" {
		return "", false, err
	}
	return s.kv.Get(ctx, sid, key)
}

func (s *serverStore) Set(ctx context.Context, key, value string) error {
	sid, err := s.sessionID(true)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, sid, key, value)
}

func (s *serverStore) Remove(ctx context.Context, key string) error {
	sid, err := s.sessionID(false)
	if err != nil || sid == "" {
		return err
	}
	return s.kv.Remove(ctx, sid, key)
}
