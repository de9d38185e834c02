package blob

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	submissionUC "studentloan-backend/internal/usecase/submission"
)

var _ submissionUC.BlobStore = (*Storage)(nil)

func TestPresignedURL_Offline(t *testing.T) {
	// with a fixed region presigning needs no round trip
	s, err := New(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "loan-documents",
		Region:    "us-east-1",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw, err := s.PresignedURL(context.Background(), "2567/1/u1/form_101/abc.pdf", 15*time.Minute)
	if err != nil {
		t.Fatalf("PresignedURL: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasSuffix(u.Path, "/loan-documents/2567/1/u1/form_101/abc.pdf") {
		t.Fatalf("unexpected path %q", u.Path)
	}
	if got := u.Query().Get("X-Amz-Expires"); got != "900" {
		t.Fatalf("X-Amz-Expires = %q, want 900", got)
	}
}

func TestNew_BadEndpoint(t *testing.T) {
	if _, err := New(Config{Endpoint: "http://has-scheme:9000"}); err == nil {
		t.Fatal("expected error for endpoint with scheme")
	}
}
