package process

import (
	"context"

	"studentloan-backend/internal/domain/period"
)

type Repository interface {
	Get(ctx context.Context, key period.StudentKey) (*Status, error)
	GetForUpdate(ctx context.Context, key period.StudentKey) (*Status, error)
	// Ensure inserts s unless a record for its key exists; an existing record
	// is left untouched. It reports whether a row was created.
	Ensure(ctx context.Context, s *Status) (bool, error)
	// Save upserts by (user, academic year, term).
	Save(ctx context.Context, s *Status) error
	ListByPeriod(ctx context.Context, p period.Period) ([]Status, error)
}
