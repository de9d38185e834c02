package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: "warn"})

	l.Info("dropped")
	l.Warn("kept", "user_id", "u1")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "dropped") {
		t.Fatalf("info entry should be filtered at warn level: %s", out)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("not json: %v (%s)", err, out)
	}
	if entry["msg"] != "kept" || entry["user_id"] != "u1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestWarn_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetForTest(t, New(&buf, Config{Format: "text", Level: "debug"}))

	ctx := WithRequestID(context.Background(), "req-1")
	Warn(ctx, "phase undetermined")

	if !strings.Contains(buf.String(), "request_id=req-1") {
		t.Fatalf("request id missing: %s", buf.String())
	}
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	if parseLevel("nonsense").String() != "INFO" {
		t.Fatalf("unknown level should map to info")
	}
}
