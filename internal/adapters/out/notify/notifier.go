// Package notify provides the logging notification adapter.
//
// The marketplace has no real email or SMS vendor integration; notifications
// are emitted as structured log records carrying the channel and recipient.
package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

var _ ports.Notifier = &Notifier{}

// Notifier writes notifications to a structured logger.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a logging notifier.
// Passing a nil logger falls back to slog.Default.
func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify broadcasts a general informational message.
func (n *Notifier) Notify(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, message, "channel", "broadcast")
}

// NotifyEmail sends a message to the given recipient over email.
func (n *Notifier) NotifyEmail(ctx context.Context, to, message string) {
	n.logger.InfoContext(ctx, message, "channel", "email", "to", to)
}

// NotifySms sends a message to the given recipient over SMS.
func (n *Notifier) NotifySms(ctx context.Context, to, message string) {
	n.logger.InfoContext(ctx, message, "channel", "sms", "to", to)
}
