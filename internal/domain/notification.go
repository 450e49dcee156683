package domain

// Severity controls how a notification is presented.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is transient feedback shown to the user after an action.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// IsDestructive reports whether the notification describes a failure.
func (n Notification) IsDestructive() bool {
	return n.Severity == SeverityDestructive
}

// Notifier is the sink that displays notifications. It is fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}
