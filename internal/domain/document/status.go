package document

import (
	"errors"
	"time"
)

var ErrInvalidStatus = errors.New("invalid document status")

type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Status is the review state of one document kind within a submission.
// Any status may follow any other.
type Status struct {
	Status     ReviewStatus `json:"status"`
	Comments   string       `json:"comments,omitempty"`
	ReviewedAt *time.Time   `json:"reviewedAt,omitempty"`
	ReviewedBy string       `json:"reviewedBy,omitempty"`
	FileKey    string       `json:"fileKey,omitempty"`
}

// Statuses maps document kind to its review state.
type Statuses map[string]Status

// Kinds returns the document kinds present, sorted.
func (s Statuses) Kinds() []string { return sortedKeys(s) }

// AllApproved is false for an empty set: nothing submitted is never
// fully approved.
func AllApproved(s Statuses) bool {
	if len(s) == 0 {
		return false
	}
	for _, st := range s {
		if st.Status != StatusApproved {
			return false
		}
	}
	return true
}
