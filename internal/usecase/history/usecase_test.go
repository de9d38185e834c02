package history

import (
	"context"
	"errors"
	"testing"

	domain "studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/testutil/historymock"
)

func TestUsecase_Get(t *testing.T) {
	want := domain.New("u1")
	uc := NewUsecase(&historymock.Repo{
		GetFn: func(_ context.Context, userID string) (*domain.LoanHistory, error) {
			if userID != "u1" {
				return nil, domain.ErrNotFound
			}
			return want, nil
		},
	})

	got, err := uc.Get(context.Background(), "u1")
	if err != nil || got != want {
		t.Fatalf("Get: got %v, %v", got, err)
	}
	if _, err := uc.Get(context.Background(), "u2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), " "); !errors.Is(err, period.ErrMissingUser) {
		t.Fatalf("want ErrMissingUser, got %v", err)
	}
}
