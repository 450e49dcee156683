package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/authflow/internal/app"
	"github.com/nfrund/authflow/internal/config"
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/handlers"
	"github.com/nfrund/authflow/internal/handoff"
	"github.com/nfrund/authflow/internal/logging"
	"github.com/nfrund/authflow/internal/metrics"
	appmw "github.com/nfrund/authflow/internal/middleware"
	"github.com/nfrund/authflow/internal/pubsub"
	"github.com/nfrund/authflow/web"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	injector    do.Injector
	logger      *slog.Logger
	bus         *pubsub.WatermillBridge
	metrics     *metrics.Metrics
	handoff     handoff.Factory
	authHandler *handlers.AuthHandler
	pageHandler *handlers.PageHandler
	stopAudit   context.CancelFunc
}

// New creates a new Server instance from cfg. Routes are added by
// RegisterRoutes.
func New(cfg config.Provider) (*Server, error) {
	i := app.New(cfg)

	logger := do.MustInvoke[*slog.Logger](i)
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	hf, err := do.Invoke[handoff.Factory](i)
	if err != nil {
		return nil, fmt.Errorf("handoff backend: %w", err)
	}
	authHandler, err := do.Invoke[*handlers.AuthHandler](i)
	if err != nil {
		return nil, err
	}

	auditCtx, stopAudit := context.WithCancel(context.Background())
	if err := flow.StartAudit(auditCtx, bus, logger, m); err != nil {
		stopAudit()
		return nil, fmt.Errorf("start audit subscriber: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator(do.MustInvoke[*validator.Validate](i))
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmw.Logger(logger))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(m.Middleware())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.GetSessionMaxAge(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Serve the embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	logger.Info("Server configured", "handoff_backend", cfg.GetHandoffBackend(), "addr", cfg.GetServerAddr())

	return &Server{
		E:           e,
		Cfg:         cfg,
		injector:    i,
		logger:      logger,
		bus:         bus,
		metrics:     m,
		handoff:     hf,
		authHandler: authHandler,
		pageHandler: do.MustInvoke[*handlers.PageHandler](i),
		stopAudit:   stopAudit,
	}, nil
}

// requestLogger logs one line per request with the request-scoped logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			ctx := c.Request().Context()
			logging.FromContext(ctx).LogAttrs(ctx, level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
