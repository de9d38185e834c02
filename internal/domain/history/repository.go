package history

import "context"

type Repository interface {
	Get(ctx context.Context, userID string) (*LoanHistory, error)
	GetForUpdate(ctx context.Context, userID string) (*LoanHistory, error)
	// Save inserts a new history or updates an existing one.
	Save(ctx context.Context, h *LoanHistory) error
}
