package http

import (
	"errors"
	"testing"
)

func TestReviewStatusValidation(t *testing.T) {
	type P struct {
		Status string `json:"status" validate:"required,reviewstatus"`
	}
	cv := NewValidator()

	for _, s := range []string{"pending", "approved", "rejected"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid, got %v", s, err)
		}
	}
	for _, s := range []string{"APPROVED", "done", " approved"} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "status", "pending, approved, rejected") {
			t.Fatalf("expected reviewstatus message for %q, got %+v", s, ToFieldErrors(err))
		}
	}
}

func TestDocKindValidation(t *testing.T) {
	type P struct {
		Kinds []string `json:"kinds" validate:"required,min=1,dive,dockind"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Kinds: []string{"form_101", "disbursement_form"}}); err != nil {
		t.Fatalf("expected valid kinds, got %v", err)
	}
	err := cv.Validate(P{Kinds: []string{"form_101", "selfie"}})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !containsFieldMsg(ToFieldErrors(err), "kinds[1]", "not a known document kind") {
		t.Fatalf("unexpected details: %+v", ToFieldErrors(err))
	}
}

func TestStepValidation(t *testing.T) {
	type P struct {
		Step   string `json:"step" validate:"stepid"`
		Status string `json:"status" validate:"stepstatus"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Step: "bank_submission", Status: "in_progress"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	err := cv.Validate(P{Step: "shipping", Status: "done"})
	if err == nil {
		t.Fatal("expected error")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "step", "document_collection") || !containsFieldMsg(fe, "status", "in_progress") {
		t.Fatalf("unexpected details: %+v", fe)
	}
}

func TestRequiredMessage(t *testing.T) {
	type P struct {
		UserID string `json:"user_id" validate:"required"`
	}
	err := NewValidator().Validate(P{})
	if !containsFieldMsg(ToFieldErrors(err), "user_id", "is required") {
		t.Fatalf("unexpected details: %+v", ToFieldErrors(err))
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected: %+v", fe)
	}
}
