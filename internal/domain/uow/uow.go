package uow

import (
	"context"

	"studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/submission"
)

// Repos are bound to the same transaction.
type Repos struct {
	Submissions submission.Repository
	Histories   history.Repository
	Processes   process.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the submission first, then pass it in
	WithinSubmissionTx(ctx context.Context, key period.StudentKey, fn func(r Repos, s *submission.Submission) error) error
}
