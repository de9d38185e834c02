package process

import (
	"errors"
	"time"

	"studentloan-backend/internal/domain/period"
)

var (
	ErrNotFound          = errors.New("loan process status not found")
	ErrInvalidStep       = errors.New("invalid process step")
	ErrInvalidStepStatus = errors.New("invalid process step status")
)

type StepID string

const (
	StepDocumentCollection   StepID = "document_collection"
	StepDocumentOrganization StepID = "document_organization"
	StepBankSubmission       StepID = "bank_submission"
)

// StepOrder is the fixed order of the downstream workflow.
var StepOrder = []StepID{StepDocumentCollection, StepDocumentOrganization, StepBankSubmission}

func (s StepID) Valid() bool {
	for _, id := range StepOrder {
		if s == id {
			return true
		}
	}
	return false
}

// Next returns the step after s; the last step returns itself.
func (s StepID) Next() StepID {
	for i, id := range StepOrder {
		if id == s && i+1 < len(StepOrder) {
			return StepOrder[i+1]
		}
	}
	return StepBankSubmission
}

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

func (s StepStatus) Valid() bool {
	switch s {
	case StepPending, StepInProgress, StepCompleted:
		return true
	}
	return false
}

type OverallStatus string

const (
	OverallProcessing OverallStatus = "processing"
	OverallCompleted  OverallStatus = "completed"
)

type Step struct {
	Status    StepStatus `json:"status"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Note      string     `json:"note,omitempty"`
}

type Steps map[StepID]Step

// Status is the per (user, academic year, term) loan process record.
// Table: loan_process_statuses.
type Status struct {
	ID            uint64        `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID        string        `gorm:"column:user_id;size:64;not null;uniqueIndex:ux_process_user_period" json:"user_id"`
	AcademicYear  string        `gorm:"column:academic_year;size:8;not null;uniqueIndex:ux_process_user_period;index:idx_process_period" json:"academic_year"`
	Term          string        `gorm:"column:term;size:8;not null;uniqueIndex:ux_process_user_period;index:idx_process_period" json:"term"`
	CurrentStep   StepID        `gorm:"column:current_step;size:32;not null" json:"current_step"`
	Steps         Steps         `gorm:"column:steps;type:text;serializer:json" json:"steps"`
	OverallStatus OverallStatus `gorm:"column:overall_status;size:16;not null" json:"overall_status"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Status) TableName() string { return "loan_process_statuses" }

// NewStatus returns a fresh record with every step pending.
func NewStatus(key period.StudentKey, now time.Time) *Status {
	steps := make(Steps, len(StepOrder))
	for _, id := range StepOrder {
		at := now
		steps[id] = Step{Status: StepPending, UpdatedAt: &at}
	}
	return &Status{
		UserID:        key.UserID,
		AcademicYear:  key.AcademicYear,
		Term:          key.Term,
		CurrentStep:   StepDocumentCollection,
		Steps:         steps,
		OverallStatus: OverallProcessing,
	}
}

func (s *Status) Key() period.StudentKey {
	return period.NewKey(s.UserID, s.AcademicYear, s.Term)
}

// ForKey returns s when it belongs to key, otherwise a fresh record, so a
// record from another term is never reused.
func ForKey(s *Status, key period.StudentKey, now time.Time) *Status {
	if s == nil || s.Key() != key {
		return NewStatus(key, now)
	}
	if s.Steps == nil {
		s.Steps = Steps{}
	}
	for _, id := range StepOrder {
		if _, ok := s.Steps[id]; !ok {
			at := now
			s.Steps[id] = Step{Status: StepPending, UpdatedAt: &at}
		}
	}
	return s
}

// ApplyStep sets one step and recomputes the current step and overall status.
func (s *Status) ApplyStep(step StepID, status StepStatus, note string, now time.Time) error {
	if !step.Valid() {
		return ErrInvalidStep
	}
	if !status.Valid() {
		return ErrInvalidStepStatus
	}
	if s.Steps == nil {
		s.Steps = Steps{}
	}
	s.Steps[step] = Step{Status: status, UpdatedAt: &now, Note: note}

	if status == StepCompleted {
		s.CurrentStep = step.Next()
	} else {
		s.CurrentStep = step
	}

	s.OverallStatus = OverallCompleted
	for _, id := range StepOrder {
		if s.Steps[id].Status != StepCompleted {
			s.OverallStatus = OverallProcessing
			break
		}
	}
	return nil
}

// Clone deep-copies the steps map.
func (s *Status) Clone() *Status {
	if s == nil {
		return nil
	}
	out := *s
	out.Steps = make(Steps, len(s.Steps))
	for k, v := range s.Steps {
		out.Steps[k] = v
	}
	return &out
}
