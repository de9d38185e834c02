package uowmock

import (
	"context"
	"errors"

	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/submission"
	"studentloan-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinSubmissionTxFn func(ctx context.Context, key period.StudentKey, fn func(r uow.Repos, s *submission.Submission) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinSubmissionTx(fn func(context.Context, period.StudentKey, func(uow.Repos, *submission.Submission) error) error) *UoW {
	m.WithinSubmissionTxFn = fn
	return m
}

// Passthrough runs every callback against repos, resolving the locked
// submission through repos.Submissions.GetForUpdate.
func Passthrough(repos uow.Repos) *UoW {
	return New().
		WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		}).
		WithWithinSubmissionTx(func(ctx context.Context, key period.StudentKey, fn func(uow.Repos, *submission.Submission) error) error {
			s, err := repos.Submissions.GetForUpdate(ctx, key)
			if err != nil {
				return err
			}
			return fn(repos, s)
		})
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinSubmissionTx(ctx context.Context, key period.StudentKey, fn func(r uow.Repos, s *submission.Submission) error) error {
	if m.WithinSubmissionTxFn != nil {
		return m.WithinSubmissionTxFn(ctx, key, fn)
	}
	return errUnimplemented
}
