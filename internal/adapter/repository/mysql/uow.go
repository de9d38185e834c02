package mysql

import (
	"context"

	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/submission"
	"studentloan-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Submissions: &SubmissionRepository{db: tx},
		Histories:   &HistoryRepository{db: tx},
		Processes:   &ProcessRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinSubmissionTx(ctx context.Context, key period.StudentKey, fn func(r uow.Repos, s *submission.Submission) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the submission row up-front so concurrent reviews serialize
		s, err := r.Submissions.GetForUpdate(ctx, key)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
