package historymock

import (
	"context"

	domain "studentloan-backend/internal/domain/history"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn          func(ctx context.Context, userID string) (*domain.LoanHistory, error)
	GetForUpdateFn func(ctx context.Context, userID string) (*domain.LoanHistory, error)
	SaveFn         func(ctx context.Context, h *domain.LoanHistory) error
}

func (m *Repo) Get(ctx context.Context, userID string) (*domain.LoanHistory, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) GetForUpdate(ctx context.Context, userID string) (*domain.LoanHistory, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) Save(ctx context.Context, h *domain.LoanHistory) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, h)
	}
	return nil
}
