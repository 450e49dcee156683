package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/authflow/internal/config"
	"github.com/nfrund/authflow/internal/handoff"
	"github.com/samber/do/v2"
)

// waitForShutdown returns a channel that receives the first interrupt or
// terminate signal.
func waitForShutdown() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return quit
}

// Shutdown stops accepting requests, waits for in-flight ones, then stops
// the audit subscriber and releases the event bus and the Redis client.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	s.stopAudit()
	if err := s.bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if s.Cfg.GetHandoffBackend() == config.HandoffRedis {
		if kv, err := do.Invoke[*handoff.RedisKV](s.injector); err == nil {
			if err := kv.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	s.logger.Info("Server stopped")
	return errors.Join(errs...)
}
