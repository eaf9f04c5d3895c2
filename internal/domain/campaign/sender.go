package campaign

import "context"

// Sender delivers a single outbound message through a messaging provider.
// Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, message *Message) error
}
