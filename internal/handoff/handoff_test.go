package handoff_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/handoff"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// newServer exposes get/set/remove routes over the store produced by f.
func newServer(f handoff.Factory) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.GET("/get", func(c echo.Context) error {
		v, ok, err := f.For(c).Get(c.Request().Context(), domain.ResetEmailKey)
		if err != nil {
			return err
		}
		if !ok {
			return c.NoContent(http.StatusNotFound)
		}
		return c.String(http.StatusOK, v)
	})
	e.POST("/set", func(c echo.Context) error {
		if err := f.For(c).Set(c.Request().Context(), domain.ResetEmailKey, c.QueryParam("v")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.POST("/remove", func(c echo.Context) error {
		if err := f.For(c).Remove(c.Request().Context(), domain.ResetEmailKey); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

// browser replays the cookies of earlier responses, keeping the last value per name.
type browser struct {
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func (b *browser) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func exerciseFactory(t *testing.T, f handoff.Factory) {
	t.Helper()
	e := newServer(f)
	b := &browser{e: e, cookies: map[string]*http.Cookie{}}

	assert.Equal(t, http.StatusNotFound, b.do(http.MethodGet, "/get").Code)

	require.Equal(t, http.StatusNoContent, b.do(http.MethodPost, "/set?v=a@b.com").Code)
	rec := b.do(http.MethodGet, "/get")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", rec.Body.String())

	// Another browser does not see the record.
	other := &browser{e: e, cookies: map[string]*http.Cookie{}}
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodGet, "/get").Code)

	require.Equal(t, http.StatusNoContent, b.do(http.MethodPost, "/remove").Code)
	assert.Equal(t, http.StatusNotFound, b.do(http.MethodGet, "/get").Code)

	// Removing again is a no-op.
	assert.Equal(t, http.StatusNoContent, b.do(http.MethodPost, "/remove").Code)
}

func TestCookieFactory(t *testing.T) {
	exerciseFactory(t, handoff.NewCookieFactory())
}

func TestServerFactoryMemory(t *testing.T) {
	kv := handoff.NewMemoryKV(time.Hour, time.Minute)
	exerciseFactory(t, handoff.NewServerFactory(kv))
	assert.Zero(t, kv.Len())
}

func TestServerFactoryRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseFactory(t, handoff.NewServerFactory(handoff.NewRedisKV(client, time.Hour)))
}

func TestMemoryKVExpiry(t *testing.T) {
	ctx := context.Background()
	kv := handoff.NewMemoryKV(20*time.Millisecond, time.Hour)

	require.NoError(t, kv.Set(ctx, "sid", "k", "v"))
	v, ok, err := kv.Get(ctx, "sid", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok, _ = kv.Get(ctx, "other", "k")
	assert.False(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok, err = kv.Get(ctx, "sid", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisKV(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	kv := handoff.NewRedisKV(client, time.Minute)
	t.Cleanup(func() { _ = kv.Close() })

	t.Run("set writes a hash with ttl", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "s1", domain.ResetEmailKey, "a@b.com"))
		assert.Equal(t, "a@b.com", mr.HGet("authflow:handoff:s1", domain.ResetEmailKey))
		assert.Equal(t, time.Minute, mr.TTL("authflow:handoff:s1"))
	})

	t.Run("get and remove", func(t *testing.T) {
		v, ok, err := kv.Get(ctx, "s1", domain.ResetEmailKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a@b.com", v)

		require.NoError(t, kv.Remove(ctx, "s1", domain.ResetEmailKey))
		_, ok, err = kv.Get(ctx, "s1", domain.ResetEmailKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "s2", "k", "v"))
		mr.FastForward(2 * time.Minute)
		_, ok, err := kv.Get(ctx, "s2", "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("server errors are returned", func(t *testing.T) {
		mr.SetError("LOADING")
		defer mr.SetError("")
		_, _, err := kv.Get(ctx, "s1", "k")
		assert.Error(t, err)
	})
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := handoff.DialRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = handoff.DialRedis(context.Background(), "not a url")
	assert.Error(t, err)
}
