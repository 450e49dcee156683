package domain

import "context"

const (
	// ResetEmailKey is the fixed key under which the reset flow hands the
	// email address from one step to the next.
	ResetEmailKey = "resetEmail"

	// ResendAvailableAtKey stores the unix millisecond timestamp at which the
	// verification code may be resent.
	ResendAvailableAtKey = "resendAvailableAt"

	// ResetFlowKey identifies one reset attempt of one session. Two browsers
	// resetting the same address hold different ids.
	ResetFlowKey = "resetFlow"
)

// HandoffStore is a key/value store scoped to one browsing session.
//
// Presence of the ResetEmailKey entry is the only thing that lets a browser
// into the validate and set-password steps. It is not a security boundary:
// it proves that the session visited the previous step, nothing more.
type HandoffStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
