package app_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/nfrund/authflow/internal/app"
	"github.com/nfrund/authflow/internal/config"
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/handlers"
	"github.com/nfrund/authflow/internal/handoff"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		SessionSecret:  "a-very-secret-key-for-testing-!",
		SessionMaxAge:  3600,
		HandoffBackend: backend,
		SimulatedDelay: time.Millisecond,
		RedirectDelay:  time.Second,
		ResendCooldown: time.Minute,
		LogFormat:      "text",
		LogLevel:       "error",
	}
}

func TestContainerResolvesHandlers(t *testing.T) {
	for _, backend := range []string{config.HandoffCookie, config.HandoffMemory} {
		t.Run(backend, func(t *testing.T) {
			i := app.New(testConfig(backend))

			_, err := do.Invoke[*handlers.AuthHandler](i)
			require.NoError(t, err)
			_, err = do.Invoke[*handlers.PageHandler](i)
			require.NoError(t, err)
			_, err = do.Invoke[*flow.Controller](i)
			require.NoError(t, err)
		})
	}
}

func TestContainerRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.HandoffRedis)
	cfg.RedisURL = "redis://" + mr.Addr() + "/0"

	i := app.New(cfg)
	f, err := do.Invoke[handoff.Factory](i)
	require.NoError(t, err)
	assert.IsType(t, &handoff.ServerFactory{}, f)

	kv, err := do.Invoke[*handoff.RedisKV](i)
	require.NoError(t, err)
	require.NoError(t, kv.Close())
}

func TestContainerRedisUnreachable(t *testing.T) {
	cfg := testConfig(config.HandoffRedis)
	cfg.RedisURL = "redis://127.0.0.1:1/0"

	_, err := do.Invoke[handoff.Factory](app.New(cfg))
	assert.Error(t, err)
}
