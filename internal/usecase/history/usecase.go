package history

import (
	"context"
	"strings"

	domain "studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/period"
)

type Usecase struct {
	repo domain.Repository
}

func NewUsecase(repo domain.Repository) *Usecase { return &Usecase{repo: repo} }

// Get returns the student's cross-term loan history.
func (u *Usecase) Get(ctx context.Context, userID string) (*domain.LoanHistory, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, period.ErrMissingUser
	}
	return u.repo.Get(ctx, userID)
}
