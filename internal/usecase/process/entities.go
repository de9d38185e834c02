package process

import (
	"context"

	"studentloan-backend/internal/domain/period"
	domain "studentloan-backend/internal/domain/process"
)

type UpdateStepInput struct {
	Key    period.StudentKey
	Step   domain.StepID
	Status domain.StepStatus
	Note   string
}

type FailedItem struct {
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

// BulkResult aggregates per-student outcomes of a batch operation.
type BulkResult struct {
	Success []string     `json:"success"`
	Failed  []FailedItem `json:"failed"`
}

// Cache is a read-after-write view of process records.
type Cache interface {
	Get(ctx context.Context, key period.StudentKey) (*domain.Status, bool)
	Put(ctx context.Context, s *domain.Status)
}
