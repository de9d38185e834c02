package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studentloan-backend/internal/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func authEcho() *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, OfficerID(c))
	}, RequireOfficer(testSecret))
	return e
}

func getMe(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireOfficer(t *testing.T) {
	e := authEcho()

	admin, _ := IssueToken(testSecret, "admin-1", RoleAdmin, time.Hour)
	student, _ := IssueToken(testSecret, "u1", "student", time.Hour)
	expired, _ := IssueToken(testSecret, "officer-1", RoleOfficer, -time.Minute)
	forged, _ := IssueToken([]byte("other-secret"), "officer-1", RoleOfficer, time.Hour)
	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             RoleOfficer,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "officer-1"},
	}).SignedString(testSecret)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"officer", bearer(t, "officer-1"), http.StatusOK, "officer-1"},
		{"admin", "Bearer " + admin, http.StatusOK, "admin-1"},
		{"no header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"student role", "Bearer " + student, http.StatusForbidden, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + forged, http.StatusUnauthorized, ""},
		{"no expiry", "Bearer " + noExp, http.StatusUnauthorized, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := getMe(e, tc.header)
			if rec.Code != tc.wantCode {
				t.Fatalf("code = %d, want %d (body %s)", rec.Code, tc.wantCode, rec.Body.String())
			}
			if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
				t.Fatalf("body = %q, want %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestIssueToken_RequiresOfficerID(t *testing.T) {
	if _, err := IssueToken(testSecret, "", RoleOfficer, time.Hour); err == nil {
		t.Fatal("expected error for empty officer id")
	}
}

func TestRequestContext_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logging.SetForTest(t, logging.New(&buf, logging.Config{Format: "text"}))

	e := echo.New()
	e.GET("/x", func(c echo.Context) error {
		logging.Info(c.Request().Context(), "inside handler")
		return c.NoContent(http.StatusNoContent)
	}, RequestContext())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "request_id=req-42") {
		t.Fatalf("request id not propagated: %s", buf.String())
	}
}
