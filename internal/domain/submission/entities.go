package submission

import (
	"errors"
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
)

var (
	ErrNotFound          = errors.New("submission not found")
	ErrSubmissionsClosed = errors.New("document submission is closed")
	ErrNoDocuments       = errors.New("at least one document kind is required")
)

// Table: document_submissions, one row per (user, academic year, term).
type Submission struct {
	ID               uint64            `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID           string            `gorm:"column:user_id;size:64;not null;uniqueIndex:ux_submissions_user_period" json:"user_id"`
	StudentID        string            `gorm:"column:student_id;size:32" json:"student_id"`
	CitizenID        string            `gorm:"column:citizen_id;size:13" json:"citizen_id"`
	AcademicYear     string            `gorm:"column:academic_year;size:8;not null;uniqueIndex:ux_submissions_user_period;index:idx_submissions_period" json:"academic_year"`
	Term             string            `gorm:"column:submission_term;size:8;not null;uniqueIndex:ux_submissions_user_period;index:idx_submissions_period" json:"submission_term"`
	DocumentStatuses document.Statuses `gorm:"column:document_statuses;type:text;serializer:json" json:"document_statuses"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string { return "document_submissions" }

func New(key period.StudentKey) *Submission {
	return &Submission{
		UserID:           key.UserID,
		AcademicYear:     key.AcademicYear,
		Term:             key.Term,
		DocumentStatuses: document.Statuses{},
	}
}

func (s *Submission) Key() period.StudentKey {
	return period.NewKey(s.UserID, s.AcademicYear, s.Term)
}

// SetStatus overwrites the review state of one document kind, keeping the
// uploaded file reference.
func (s *Submission) SetStatus(kind string, status document.ReviewStatus, comments, reviewer string, at time.Time) {
	if s.DocumentStatuses == nil {
		s.DocumentStatuses = document.Statuses{}
	}
	cur := s.DocumentStatuses[kind]
	cur.Status = status
	cur.Comments = comments
	cur.ReviewedBy = reviewer
	cur.ReviewedAt = &at
	s.DocumentStatuses[kind] = cur
}

// MarkSubmitted (re)opens a document kind for review after an upload.
func (s *Submission) MarkSubmitted(kind, fileKey string) {
	if s.DocumentStatuses == nil {
		s.DocumentStatuses = document.Statuses{}
	}
	cur := s.DocumentStatuses[kind]
	if fileKey == "" {
		fileKey = cur.FileKey
	}
	s.DocumentStatuses[kind] = document.Status{Status: document.StatusPending, FileKey: fileKey}
}
