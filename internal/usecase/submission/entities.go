package submission

import (
	"io"
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
)

type SubmitInput struct {
	Key       period.StudentKey
	StudentID string
	CitizenID string
	Kinds     []string
}

type AttachInput struct {
	Key         period.StudentKey
	Kind        string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentDTO struct {
	Kind       string                `json:"kind"`
	Label      string                `json:"label"`
	Status     document.ReviewStatus `json:"status"`
	Comments   string                `json:"comments,omitempty"`
	ReviewedAt *time.Time            `json:"reviewed_at,omitempty"`
	ReviewedBy string                `json:"reviewed_by,omitempty"`
	HasFile    bool                  `json:"has_file"`
}

type SubmissionDTO struct {
	UserID       string         `json:"user_id"`
	StudentID    string         `json:"student_id"`
	CitizenID    string         `json:"citizen_id"`
	AcademicYear string         `json:"academic_year"`
	Term         string         `json:"term"`
	Phase        document.Phase `json:"phase"`
	AllApproved  bool           `json:"all_approved"`
	Documents    []DocumentDTO  `json:"documents"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type URLDTO struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
