package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
	submissionDomain "studentloan-backend/internal/domain/submission"
)

func makeSubmission(key period.StudentKey, kinds ...string) *submissionDomain.Submission {
	s := submissionDomain.New(key)
	s.StudentID = "6401234567"
	s.CitizenID = "1103700000001"
	for _, k := range kinds {
		s.MarkSubmitted(k, "")
	}
	return s
}

func TestSubmission_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	key := period.NewKey("u1", "2567", "1")

	if err := repo.Create(ctx, makeSubmission(key, "form_101", "id_copies_student")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StudentID != "6401234567" || len(got.DocumentStatuses) != 2 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.DocumentStatuses["form_101"].Status != document.StatusPending {
		t.Fatalf("document status not round-tripped: %+v", got.DocumentStatuses)
	}
}

func TestSubmission_SaveReview(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	key := period.NewKey("u1", "2567", "1")

	s := makeSubmission(key, "form_101")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s.SetStatus("form_101", document.StatusApproved, "ok", "officer-1", at)
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetForUpdate(ctx, key)
	if err != nil {
		t.Fatalf("GetForUpdate: %v", err)
	}
	st := got.DocumentStatuses["form_101"]
	if st.Status != document.StatusApproved || st.ReviewedBy != "officer-1" || st.ReviewedAt == nil || !st.ReviewedAt.Equal(at) {
		t.Fatalf("review not persisted: %+v", st)
	}
}

func TestSubmission_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)

	_, err := repo.Get(context.Background(), period.NewKey("nobody", "2567", "1"))
	if !errors.Is(err, submissionDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSubmission_ListByPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	for _, k := range []period.StudentKey{
		period.NewKey("u2", "2567", "1"),
		period.NewKey("u1", "2567", "1"),
		period.NewKey("u1", "2567", "2"),
		period.NewKey("u1", "2568", "1"),
	} {
		if err := repo.Create(ctx, makeSubmission(k, "form_101")); err != nil {
			t.Fatalf("Create %v: %v", k, err)
		}
	}

	got, err := repo.ListByPeriod(ctx, period.Period{AcademicYear: "2567", Term: "1"})
	if err != nil {
		t.Fatalf("ListByPeriod: %v", err)
	}
	if len(got) != 2 || got[0].UserID != "u1" || got[1].UserID != "u2" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestSubmission_UniquePerPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()
	key := period.NewKey("u1", "2567", "1")

	if err := repo.Create(ctx, makeSubmission(key, "form_101")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeSubmission(key, "form_101")); err == nil {
		t.Fatalf("expected unique violation for duplicate (user, year, term)")
	}
}
