package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/submission"
	"studentloan-backend/internal/domain/uow"
	"studentloan-backend/internal/logging"
	"studentloan-backend/pkg/id"
)

var ErrNoUpdates = errors.New("at least one document update is required")

// Notifier receives phase approvals after they are committed.
type Notifier interface {
	PhaseApproved(ctx context.Context, ev PhaseApprovedEvent) error
}

type Usecase struct {
	uow      uow.UnitOfWork
	notifier Notifier
	now      func() time.Time
}

// NewUsecase: notifier may be nil.
func NewUsecase(tx uow.UnitOfWork, n Notifier) *Usecase {
	return &Usecase{uow: tx, notifier: n, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) ReviewDocument(ctx context.Context, key period.StudentKey, upd DocumentUpdate, reviewerID string) (*ReviewDTO, error) {
	return u.ReviewDocuments(ctx, ReviewInput{Key: key, Updates: []DocumentUpdate{upd}, ReviewerID: reviewerID})
}

// ReviewDocuments writes every update under one lock on the submission and
// then runs the phase transition check.
func (u *Usecase) ReviewDocuments(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	if err := in.Key.Validate(); err != nil {
		return nil, err
	}
	if len(in.Updates) == 0 {
		return nil, ErrNoUpdates
	}
	for _, upd := range in.Updates {
		if !document.IsKnown(upd.Kind) {
			return nil, fmt.Errorf("%w: %s", document.ErrUnknownKind, upd.Kind)
		}
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: %s", document.ErrInvalidStatus, upd.Status)
		}
	}

	var dto *ReviewDTO
	err := u.uow.WithinSubmissionTx(ctx, in.Key, func(r uow.Repos, s *submission.Submission) error {
		at := u.now()
		for _, upd := range in.Updates {
			s.SetStatus(upd.Kind, upd.Status, upd.Comments, in.ReviewerID, at)
		}
		if err := r.Submissions.Save(ctx, s); err != nil {
			logging.Error(ctx, "save document review failed",
				"table", "document_submissions", "key", in.Key.String(), "err", err)
			return err
		}
		dto = &ReviewDTO{
			UserID:           s.UserID,
			AcademicYear:     s.AcademicYear,
			Term:             s.Term,
			DocumentStatuses: s.DocumentStatuses,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tr, err := u.EvaluateTransition(ctx, in.Key)
	if err != nil {
		return nil, fmt.Errorf("review saved, phase transition failed: %w", err)
	}
	dto.Transition = tr
	return dto, nil
}

// EvaluateTransition moves a fully approved submission into the downstream
// workflow: it ensures the process record and updates the loan history in one
// transaction. Incomplete or unclassifiable submissions are a no-op.
func (u *Usecase) EvaluateTransition(ctx context.Context, key period.StudentKey) (*TransitionDTO, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	dto := &TransitionDTO{}
	var ev PhaseApprovedEvent
	err := u.uow.WithinSubmissionTx(ctx, key, func(r uow.Repos, s *submission.Submission) error {
		if !document.AllApproved(s.DocumentStatuses) {
			return nil
		}
		kinds := s.DocumentStatuses.Kinds()
		phase := document.DetectPhase(kinds)
		if phase == document.PhaseUndetermined {
			logging.Warn(ctx, "all documents approved but phase cannot be determined",
				"user_id", key.UserID, "academic_year", key.AcademicYear, "term", key.Term, "kinds", kinds)
			return nil
		}

		now := u.now()
		created, err := r.Processes.Ensure(ctx, process.NewStatus(key, now))
		if err != nil {
			logging.Error(ctx, "ensure process status failed",
				"table", "loan_process_statuses", "key", key.String(), "err", err)
			return fmt.Errorf("ensure process status: %w", err)
		}

		h, err := r.Histories.GetForUpdate(ctx, key.UserID)
		if errors.Is(err, history.ErrNotFound) {
			h = history.New(key.UserID)
		} else if err != nil {
			logging.Error(ctx, "load loan history failed",
				"table", "loan_histories", "user_id", key.UserID, "err", err)
			return fmt.Errorf("load loan history: %w", err)
		}
		h.Record(phase, key.Period)
		if err := r.Histories.Save(ctx, h); err != nil {
			logging.Error(ctx, "save loan history failed",
				"table", "loan_histories", "user_id", key.UserID, "err", err)
			return fmt.Errorf("save loan history: %w", err)
		}

		dto.Triggered = true
		dto.Phase = phase
		dto.ProcessCreated = created
		dto.Message = fmt.Sprintf("%s approved for student %s (%s)", phaseLabel(phase), studentLabel(s), key.Period)
		ev = PhaseApprovedEvent{
			EventID:      id.NewID32(),
			UserID:       key.UserID,
			StudentID:    s.StudentID,
			AcademicYear: key.AcademicYear,
			Term:         key.Term,
			Phase:        phase,
			ApprovedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if dto.Triggered {
		logging.Info(ctx, dto.Message, "user_id", key.UserID, "phase", string(dto.Phase), "process_created", dto.ProcessCreated)
		if u.notifier != nil {
			if nerr := u.notifier.PhaseApproved(ctx, ev); nerr != nil {
				logging.Error(ctx, "phase approval notification failed", "event_id", ev.EventID, "err", nerr)
			}
		}
	}
	return dto, nil
}

func phaseLabel(p document.Phase) string {
	if p == document.PhaseDisbursement {
		return "Disbursement documents"
	}
	return "Initial application"
}

func studentLabel(s *submission.Submission) string {
	if s.StudentID != "" {
		return s.StudentID
	}
	return s.UserID
}
