package submission

import (
	"context"

	"studentloan-backend/internal/domain/period"
)

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	Get(ctx context.Context, key period.StudentKey) (*Submission, error)
	// GetForUpdate locks the row for the rest of the transaction.
	GetForUpdate(ctx context.Context, key period.StudentKey) (*Submission, error)
	Save(ctx context.Context, s *Submission) error
	ListByPeriod(ctx context.Context, p period.Period) ([]Submission, error)
}
