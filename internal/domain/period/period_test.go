package period

import (
	"errors"
	"testing"
)

func TestStudentKey_Validate(t *testing.T) {
	tests := []struct {
		name string
		key  StudentKey
		want error
	}{
		{"ok", NewKey("u1", "2567", "1"), nil},
		{"missing user", NewKey("  ", "2567", "1"), ErrMissingUser},
		{"missing year", NewKey("u1", "", "1"), ErrMissingPeriod},
		{"missing term", NewKey("u1", "2567", " "), ErrMissingPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStudentKey_MapIdentity(t *testing.T) {
	m := map[StudentKey]int{}
	m[NewKey("u_1", "2567", "1")] = 1
	m[NewKey("u", "1_2567", "1")] = 2
	m[NewKey("u_1", "2568", "1")] = 3
	if len(m) != 3 {
		t.Fatalf("keys collided: %v", m)
	}
	if m[NewKey("u_1", "2567", "1")] != 1 {
		t.Fatalf("lookup by equal key failed")
	}
}

func TestSettings_Resolve(t *testing.T) {
	s := Settings{Current: Period{AcademicYear: "2567", Term: "2"}}
	if got := s.Resolve(Period{}); got != (Period{AcademicYear: "2567", Term: "2"}) {
		t.Fatalf("empty period not resolved: %+v", got)
	}
	if got := s.Resolve(Period{AcademicYear: "2566"}); got != (Period{AcademicYear: "2566", Term: "2"}) {
		t.Fatalf("partial period not resolved: %+v", got)
	}
	if got := s.Resolve(Period{AcademicYear: "2566", Term: "1"}); got.Term != "1" {
		t.Fatalf("explicit term overwritten: %+v", got)
	}
}
