package config_test

import (
	"testing"
	"time"

	"github.com/nfrund/authflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, config.HandoffCookie, cfg.GetHandoffBackend())
	assert.Equal(t, 1500*time.Millisecond, cfg.GetSimulatedDelay())
	assert.Equal(t, time.Second, cfg.GetRedirectDelay())
	assert.Equal(t, 60*time.Second, cfg.GetResendCooldown())
	assert.False(t, cfg.GetSimulateFailures())
	assert.Equal(t, "text", cfg.GetLogFormat())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
	t.Setenv("HANDOFF_BACKEND", "redis")
	t.Setenv("SIMULATED_DELAY", "10ms")
	t.Setenv("SIMULATE_FAILURES", "true")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.HandoffRedis, cfg.GetHandoffBackend())
	assert.Equal(t, 10*time.Millisecond, cfg.GetSimulatedDelay())
	assert.True(t, cfg.GetSimulateFailures())
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := config.FromEnv()
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "short")
		_, err := config.FromEnv()
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
		t.Setenv("HANDOFF_BACKEND", "postgres")
		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "unknown handoff backend")
	})
}
