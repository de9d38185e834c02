package history

import (
	"errors"
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
)

var ErrNotFound = errors.New("loan history not found")

// LoanHistory accumulates a student's progress across terms. Approval flags
// only ever move from false to true.
type LoanHistory struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID string `gorm:"column:user_id;size:64;not null;uniqueIndex:ux_loan_histories_user" json:"user_id"`

	HasCompletedPhase1Ever bool   `gorm:"column:has_completed_phase1_ever" json:"has_completed_phase1_ever"`
	Phase1Approved         bool   `gorm:"column:phase1_approved" json:"phase1_approved"`
	LastPhase1ApprovedYear string `gorm:"column:last_phase1_approved_year;size:8" json:"last_phase1_approved_year,omitempty"`
	LastPhase1ApprovedTerm string `gorm:"column:last_phase1_approved_term;size:8" json:"last_phase1_approved_term,omitempty"`
	CurrentPhase           string `gorm:"column:current_phase;size:32" json:"current_phase,omitempty"`

	HasEverApplied       bool   `gorm:"column:has_ever_applied" json:"has_ever_applied"`
	FirstApplicationYear string `gorm:"column:first_application_year;size:8" json:"first_application_year,omitempty"`
	FirstApplicationTerm string `gorm:"column:first_application_term;size:8" json:"first_application_term,omitempty"`

	DisbursementSubmitted        bool   `gorm:"column:disbursement_submitted" json:"disbursement_submitted"`
	DisbursementApproved         bool   `gorm:"column:disbursement_approved" json:"disbursement_approved"`
	LastDisbursementSubmitYear   string `gorm:"column:last_disbursement_submit_year;size:8" json:"last_disbursement_submit_year,omitempty"`
	LastDisbursementSubmitTerm   string `gorm:"column:last_disbursement_submit_term;size:8" json:"last_disbursement_submit_term,omitempty"`
	LastDisbursementApprovedYear string `gorm:"column:last_disbursement_approved_year;size:8" json:"last_disbursement_approved_year,omitempty"`
	LastDisbursementApprovedTerm string `gorm:"column:last_disbursement_approved_term;size:8" json:"last_disbursement_approved_term,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanHistory) TableName() string { return "loan_histories" }

func New(userID string) *LoanHistory { return &LoanHistory{UserID: userID} }

// RecordPhase1Approval moves the student on to disbursement. The first
// approval ever also stamps the first application period.
func (h *LoanHistory) RecordPhase1Approval(p period.Period) {
	h.HasCompletedPhase1Ever = true
	h.Phase1Approved = true
	h.LastPhase1ApprovedYear = p.AcademicYear
	h.LastPhase1ApprovedTerm = p.Term
	h.CurrentPhase = string(document.PhaseDisbursement)
	if !h.HasEverApplied {
		h.HasEverApplied = true
		h.FirstApplicationYear = p.AcademicYear
		h.FirstApplicationTerm = p.Term
	}
}

func (h *LoanHistory) RecordDisbursementApproval(p period.Period) {
	h.DisbursementSubmitted = true
	h.DisbursementApproved = true
	h.LastDisbursementSubmitYear = p.AcademicYear
	h.LastDisbursementSubmitTerm = p.Term
	h.LastDisbursementApprovedYear = p.AcademicYear
	h.LastDisbursementApprovedTerm = p.Term
}

// Record applies the approval of phase ph. It reports false for an
// undetermined phase and leaves h untouched.
func (h *LoanHistory) Record(ph document.Phase, p period.Period) bool {
	switch ph {
	case document.PhaseInitialApplication:
		h.RecordPhase1Approval(p)
	case document.PhaseDisbursement:
		h.RecordDisbursementApproval(p)
	default:
		return false
	}
	return true
}
