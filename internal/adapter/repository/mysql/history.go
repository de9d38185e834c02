package mysql

import (
	"context"
	"errors"

	historyDomain "studentloan-backend/internal/domain/history"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Get(ctx context.Context, userID string) (*historyDomain.LoanHistory, error) {
	return r.first(r.db.WithContext(ctx), userID)
}

func (r *HistoryRepository) GetForUpdate(ctx context.Context, userID string) (*historyDomain.LoanHistory, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (r *HistoryRepository) first(q *gorm.DB, userID string) (*historyDomain.LoanHistory, error) {
	var out historyDomain.LoanHistory
	err := q.Where("user_id = ?", userID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, historyDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Save inserts when h has no id yet, otherwise updates every column.
func (r *HistoryRepository) Save(ctx context.Context, h *historyDomain.LoanHistory) error {
	return r.db.WithContext(ctx).Save(h).Error
}
