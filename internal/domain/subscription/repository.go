package subscription

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Repository defines the interface for subscription persistence
type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	Get(ctx context.Context, id string) (*Subscription, error)
	List(ctx context.Context, filter *types.SubscriptionFilter) ([]*Subscription, error)
	// ListByStatus returns the tenant's subscriptions in the given lifecycle
	// state ordered by creation time descending.
	ListByStatus(ctx context.Context, status types.SubscriptionStatus) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
}
