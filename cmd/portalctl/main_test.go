package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDetectPhaseCommand(t *testing.T) {
	out, err := execute(t, "detect-phase", "form_101", "expense_burden_form")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var got struct {
		Phase      *string `json:"phase"`
		Determined bool    `json:"determined"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !got.Determined || got.Phase == nil || *got.Phase != "disbursement" {
		t.Fatalf("unexpected output: %s", out)
	}

	out, err = execute(t, "detect-phase", "mystery")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"determined": false`) || !strings.Contains(out, `"phase": null`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestDetectPhaseCommand_RequiresArgs(t *testing.T) {
	if _, err := execute(t, "detect-phase"); err == nil {
		t.Fatal("expected an error without kinds")
	}
}

func TestTokenCommand(t *testing.T) {
	env := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(env, []byte("JWT_SECRET=cli-secret\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	out, err := execute(t, "--env-file", env, "token", "officer-1", "--ttl", "1h")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if parts := strings.Split(strings.TrimSpace(out), "."); len(parts) != 3 {
		t.Fatalf("expected a JWT, got %q", out)
	}
}
