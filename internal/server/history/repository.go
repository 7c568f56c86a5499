package history

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	// ListByUser returns the user's records, most recent first.
	ListByUser(ctx context.Context, userID string) ([]*Record, error)
}
