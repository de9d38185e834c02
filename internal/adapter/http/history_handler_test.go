package http

import (
	"net/http"
	"testing"

	"studentloan-backend/internal/domain/history"
)

func TestHistory_Get(t *testing.T) {
	s := newTestServer(t)

	expectCode(t, s.do(t, http.MethodGet, "/students/u1/loan-history", nil), http.StatusNotFound)

	h := history.New("u1")
	h.HasEverApplied = true
	if err := s.db.Create(h).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := s.do(t, http.MethodGet, "/students/u1/loan-history", nil)
	expectCode(t, rec, http.StatusOK)
	got := decode[history.LoanHistory](t, rec)
	if got.UserID != "u1" || !got.HasEverApplied {
		t.Fatalf("unexpected history: %+v", got)
	}
}
