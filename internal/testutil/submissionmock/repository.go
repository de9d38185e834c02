package submissionmock

import (
	"context"

	"studentloan-backend/internal/domain/period"
	domain "studentloan-backend/internal/domain/submission"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters return domain.ErrNotFound; unset writers succeed.
type Repo struct {
	CreateFn       func(ctx context.Context, s *domain.Submission) error
	GetFn          func(ctx context.Context, key period.StudentKey) (*domain.Submission, error)
	GetForUpdateFn func(ctx context.Context, key period.StudentKey) (*domain.Submission, error)
	SaveFn         func(ctx context.Context, s *domain.Submission) error
	ListByPeriodFn func(ctx context.Context, p period.Period) ([]domain.Submission, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *Repo) Get(ctx context.Context, key period.StudentKey) (*domain.Submission, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) GetForUpdate(ctx context.Context, key period.StudentKey) (*domain.Submission, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, key)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
func (m *Repo) ListByPeriod(ctx context.Context, p period.Period) ([]domain.Submission, error) {
	if m.ListByPeriodFn != nil {
		return m.ListByPeriodFn(ctx, p)
	}
	return nil, nil
}
