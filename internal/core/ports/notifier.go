package ports

import (
	"context"
)

// Notifier is the outbound contract for fire-and-forget notifications.
//
// Notifications carry no delivery guarantee and must never block or fail the
// state transition that triggered them, so the methods return nothing;
// adapters deal with their own failures internally (typically by logging).
type Notifier interface {
	// Notify broadcasts a general informational message.
	Notify(ctx context.Context, message string)

	// NotifyEmail sends a message to the given recipient over email.
	NotifyEmail(ctx context.Context, to, message string)

	// NotifySms sends a message to the given recipient over SMS.
	NotifySms(ctx context.Context, to, message string)
}
