package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studentloan-backend/internal/adapter/middleware"
	"studentloan-backend/internal/adapter/repository/mysql"
	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/history"
	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/submission"
	historyUC "studentloan-backend/internal/usecase/history"
	processUC "studentloan-backend/internal/usecase/process"
	"studentloan-backend/internal/usecase/review"
	submissionUC "studentloan-backend/internal/usecase/submission"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	testSecret   = []byte("handler-test-secret")
	testSettings = period.Settings{Current: period.Period{AcademicYear: "2567", Term: "1"}, SubmissionsEnabled: true}
)

type memBlobs struct{ objects map[string][]byte }

func (m *memBlobs) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = b
	return nil
}

func (m *memBlobs) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blob.test/" + key, nil
}

type recNotifier struct{ events []review.PhaseApprovedEvent }

func (n *recNotifier) PhaseApproved(_ context.Context, ev review.PhaseApprovedEvent) error {
	n.events = append(n.events, ev)
	return nil
}

type testServer struct {
	e        *echo.Echo
	db       *gorm.DB
	blobs    *memBlobs
	notifier *recNotifier
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&submission.Submission{}, &history.LoanHistory{}, &process.Status{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tx := mysql.NewGormUoW(db)
	blobs := &memBlobs{objects: map[string][]byte{}}
	n := &recNotifier{}
	cat := document.DefaultCatalog()

	e := echo.New()
	e.Validator = NewValidator()
	Routes{
		Health:      NewHandler(),
		Catalog:     NewCatalogHandler(cat),
		Submissions: NewSubmissionHandler(submissionUC.NewUsecase(tx, mysql.NewSubmissionRepository(db), blobs, cat, testSettings), testSettings),
		Reviews:     NewReviewHandler(review.NewUsecase(tx, n), testSettings),
		Processes:   NewProcessHandler(processUC.NewTracker(tx, mysql.NewProcessRepository(db), nil), testSettings),
		Histories:   NewHistoryHandler(historyUC.NewUsecase(mysql.NewHistoryRepository(db))),
		Auth:        middleware.RequireOfficer(testSecret),
	}.Register(e)

	tok, err := middleware.IssueToken(testSecret, "officer-7", middleware.RoleOfficer, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &testServer{e: e, db: db, blobs: blobs, notifier: n, token: tok}
}

// do sends an authenticated JSON request through the router.
func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	return v
}

func expectCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d; body=%s", want, rec.Code, rec.Body.String())
	}
}

func TestRoutes_OfficerGroupRequiresToken(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/submissions", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	expectCode(t, rec, http.StatusUnauthorized)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	expectCode(t, rec, http.StatusOK)
}
