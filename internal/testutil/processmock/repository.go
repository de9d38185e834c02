package processmock

import (
	"context"

	"studentloan-backend/internal/domain/period"
	domain "studentloan-backend/internal/domain/process"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn          func(ctx context.Context, key period.StudentKey) (*domain.Status, error)
	GetForUpdateFn func(ctx context.Context, key period.StudentKey) (*domain.Status, error)
	EnsureFn       func(ctx context.Context, s *domain.Status) (bool, error)
	SaveFn         func(ctx context.Context, s *domain.Status) error
	ListByPeriodFn func(ctx context.Context, p period.Period) ([]domain.Status, error)
}

func (m *Repo) Get(ctx context.Context, key period.StudentKey) (*domain.Status, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) GetForUpdate(ctx context.Context, key period.StudentKey) (*domain.Status, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, key)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) Ensure(ctx context.Context, s *domain.Status) (bool, error) {
	if m.EnsureFn != nil {
		return m.EnsureFn(ctx, s)
	}
	return true, nil
}
func (m *Repo) Save(ctx context.Context, s *domain.Status) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
func (m *Repo) ListByPeriod(ctx context.Context, p period.Period) ([]domain.Status, error) {
	if m.ListByPeriodFn != nil {
		return m.ListByPeriodFn(ctx, p)
	}
	return nil, nil
}
