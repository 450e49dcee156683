package flow

import (
	"context"
	"log/slog"

	"github.com/nfrund/authflow/internal/pubsub"
)

// TransitionObserver is told about every published transition.
type TransitionObserver interface {
	ObserveTransition(from, to string)
}

// StartAudit subscribes to TransitionEvent, logging every transition and
// reporting it to observer (which may be nil). Delivery stops when ctx is
// cancelled or the subscriber is closed.
func StartAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger, observer TransitionObserver) error {
	return pubsub.Subscribe(ctx, sub, TransitionEvent, func(ctx context.Context, t Transition) error {
		logger.InfoContext(ctx, "Flow transition", "from", t.From, "to", t.To, "email", t.Email, "at", t.At)
		if observer != nil {
			observer.ObserveTransition(string(t.From), string(t.To))
		}
		return nil
	})
}
