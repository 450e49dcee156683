// Package app assembles the services of the application in a samber/do
// injector. The server and the CLI resolve what they need from it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/authflow/internal/backend"
	"github.com/nfrund/authflow/internal/config"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/handlers"
	"github.com/nfrund/authflow/internal/handoff"
	"github.com/nfrund/authflow/internal/logging"
	"github.com/nfrund/authflow/internal/metrics"
	"github.com/nfrund/authflow/internal/pubsub"
	"github.com/nfrund/authflow/internal/rendering"
	"github.com/samber/do/v2"
)

// busBuffer is the per-subscriber buffer of the event bus.
const busBuffer = 64

// memoryCleanupInterval is how often expired in-memory handoff entries are purged.
const memoryCleanupInterval = 10 * time.Minute

// New returns an injector wired from cfg. Services are built lazily on
// first use.
func New(cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, newLogger)
	do.Provide(i, newBus)
	do.Provide(i, newMetrics)
	do.Provide(i, newValidator)
	do.Provide(i, newBackend)
	do.Provide(i, newRedisKV)
	do.Provide(i, newHandoff)
	do.Provide(i, newController)
	do.Provide(i, newRenderer)
	do.Provide(i, newAuthHandler)
	do.Provide(i, newPageHandler)

	return i
}

func newLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return logging.New(logging.Options{
		Format: cfg.GetLogFormat(),
		Level:  cfg.GetLogLevel(),
		File:   cfg.GetLogFile(),
	}), nil
}

func newBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(busBuffer), nil
}

func newMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(), nil
}

func newValidator(i do.Injector) (*validator.Validate, error) {
	return validator.New(), nil
}

func newBackend(i do.Injector) (domain.Backend, error) {
	cfg := do.MustInvoke[config.Provider](i)
	logger := do.MustInvoke[*slog.Logger](i)
	return backend.NewSimulated(cfg.GetSimulatedDelay(),
		backend.WithFailures(cfg.GetSimulateFailures()),
		backend.WithLogger(logger),
	), nil
}

func newRedisKV(i do.Injector) (*handoff.RedisKV, error) {
	cfg := do.MustInvoke[config.Provider](i)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := handoff.DialRedis(ctx, cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}
	return handoff.NewRedisKV(client, sessionTTL(cfg)), nil
}

func newHandoff(i do.Injector) (handoff.Factory, error) {
	cfg := do.MustInvoke[config.Provider](i)
	switch cfg.GetHandoffBackend() {
	case config.HandoffCookie:
		return handoff.NewCookieFactory(), nil
	case config.HandoffMemory:
		return handoff.NewServerFactory(handoff.NewMemoryKV(sessionTTL(cfg), memoryCleanupInterval)), nil
	case config.HandoffRedis:
		kv, err := do.Invoke[*handoff.RedisKV](i)
		if err != nil {
			return nil, err
		}
		return handoff.NewServerFactory(kv), nil
	default:
		return nil, fmt.Errorf("unknown handoff backend %q", cfg.GetHandoffBackend())
	}
}

func newController(i do.Injector) (*flow.Controller, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return flow.New(
		do.MustInvoke[domain.Backend](i),
		flow.WithPublisher(do.MustInvoke[*pubsub.WatermillBridge](i)),
		flow.WithObserver(do.MustInvoke[*metrics.Metrics](i)),
		flow.WithValidator(do.MustInvoke[*validator.Validate](i)),
		flow.WithCooldown(cfg.GetResendCooldown()),
	), nil
}

func newRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func newAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return handlers.NewAuthHandler(
		do.MustInvoke[*flow.Controller](i),
		do.MustInvoke[handoff.Factory](i),
		do.MustInvoke[rendering.Renderer](i),
		cfg.GetRedirectDelay(),
	), nil
}

func newPageHandler(i do.Injector) (*handlers.PageHandler, error) {
	return handlers.NewPageHandler(do.MustInvoke[rendering.Renderer](i)), nil
}

// sessionTTL is how long server-side handoff values outlive their last write.
func sessionTTL(cfg config.Provider) time.Duration {
	return time.Duration(cfg.GetSessionMaxAge()) * time.Second
}
