package mysql

import (
	"context"
	"errors"

	"studentloan-backend/internal/domain/period"
	processDomain "studentloan-backend/internal/domain/process"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var processKeyColumns = []clause.Column{{Name: "user_id"}, {Name: "academic_year"}, {Name: "term"}}

// columns a step update may touch; user and period never change
var processMutableColumns = []string{"current_step", "steps", "overall_status", "updated_at"}

type ProcessRepository struct{ db *gorm.DB }

func NewProcessRepository(db *gorm.DB) *ProcessRepository { return &ProcessRepository{db: db} }

func (r *ProcessRepository) Get(ctx context.Context, key period.StudentKey) (*processDomain.Status, error) {
	return r.first(r.db.WithContext(ctx), key)
}

func (r *ProcessRepository) GetForUpdate(ctx context.Context, key period.StudentKey) (*processDomain.Status, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), key)
}

func (r *ProcessRepository) first(q *gorm.DB, key period.StudentKey) (*processDomain.Status, error) {
	var out processDomain.Status
	err := q.Where("user_id = ? AND academic_year = ? AND term = ?", key.UserID, key.AcademicYear, key.Term).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, processDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProcessRepository) Ensure(ctx context.Context, s *processDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: processKeyColumns, DoNothing: true}).
		Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ProcessRepository) Save(ctx context.Context, s *processDomain.Status) error {
	if s.ID != 0 {
		return r.db.WithContext(ctx).Model(s).Select(processMutableColumns).Updates(s).Error
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   processKeyColumns,
			DoUpdates: clause.AssignmentColumns(processMutableColumns),
		}).
		Create(s).Error
}

func (r *ProcessRepository) ListByPeriod(ctx context.Context, p period.Period) ([]processDomain.Status, error) {
	var out []processDomain.Status
	err := r.db.WithContext(ctx).
		Where("academic_year = ? AND term = ?", p.AcademicYear, p.Term).
		Order("user_id ASC").
		Find(&out).Error
	return out, err
}
