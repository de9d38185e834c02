package review

import (
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
)

type DocumentUpdate struct {
	Kind     string
	Status   document.ReviewStatus
	Comments string
}

type ReviewInput struct {
	Key        period.StudentKey
	Updates    []DocumentUpdate
	ReviewerID string
}

// PhaseApprovedEvent is published once a submission's phase is fully approved.
type PhaseApprovedEvent struct {
	EventID      string         `json:"event_id"`
	UserID       string         `json:"user_id"`
	StudentID    string         `json:"student_id,omitempty"`
	AcademicYear string         `json:"academic_year"`
	Term         string         `json:"term"`
	Phase        document.Phase `json:"phase"`
	ApprovedAt   time.Time      `json:"approved_at"`
}

type TransitionDTO struct {
	Triggered      bool           `json:"triggered"`
	Phase          document.Phase `json:"phase,omitempty"`
	ProcessCreated bool           `json:"process_created"`
	Message        string         `json:"message,omitempty"`
}

type ReviewDTO struct {
	UserID           string            `json:"user_id"`
	AcademicYear     string            `json:"academic_year"`
	Term             string            `json:"term"`
	DocumentStatuses document.Statuses `json:"document_statuses"`
	Transition       *TransitionDTO    `json:"transition"`
}
