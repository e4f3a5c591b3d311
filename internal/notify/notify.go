// Package notify publishes moderation events to an external pub/sub topic.
package notify

import (
	"context"
)

// Publisher delivers one event to subscribers. Implementations must honour ctx.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Noop discards every event. Used when no topic is configured.
type Noop struct{}

func (Noop) Publish(ctx context.Context, subject string, payload any) error {
	return nil
}
