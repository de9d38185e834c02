package mysql

import (
	"context"
	"errors"

	"studentloan-backend/internal/domain/period"
	submissionDomain "studentloan-backend/internal/domain/submission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) Get(ctx context.Context, key period.StudentKey) (*submissionDomain.Submission, error) {
	return r.first(r.db.WithContext(ctx), key)
}

func (r *SubmissionRepository) GetForUpdate(ctx context.Context, key period.StudentKey) (*submissionDomain.Submission, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), key)
}

func (r *SubmissionRepository) first(q *gorm.DB, key period.StudentKey) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	err := q.Where("user_id = ? AND academic_year = ? AND submission_term = ?", key.UserID, key.AcademicYear, key.Term).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, submissionDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SubmissionRepository) Save(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SubmissionRepository) ListByPeriod(ctx context.Context, p period.Period) ([]submissionDomain.Submission, error) {
	var out []submissionDomain.Submission
	err := r.db.WithContext(ctx).
		Where("academic_year = ? AND submission_term = ?", p.AcademicYear, p.Term).
		Order("user_id ASC").
		Find(&out).Error
	return out, err
}
