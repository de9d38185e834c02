package document

import (
	"reflect"
	"testing"
)

func TestAllApproved(t *testing.T) {
	tests := []struct {
		name string
		in   Statuses
		want bool
	}{
		{"nil", nil, false},
		{"empty", Statuses{}, false},
		{"one pending", Statuses{"a": {Status: StatusApproved}, "b": {Status: StatusPending}}, false},
		{"one rejected", Statuses{"a": {Status: StatusRejected}, "b": {Status: StatusApproved}}, false},
		{"blank status", Statuses{"a": {}}, false},
		{"all approved", Statuses{"a": {Status: StatusApproved}, "b": {Status: StatusApproved}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllApproved(tt.in); got != tt.want {
				t.Fatalf("AllApproved = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatuses_KindsSorted(t *testing.T) {
	s := Statuses{"form_101": {}, "disbursement_form": {}, "id_copies_student": {}}
	want := []string{"disbursement_form", "form_101", "id_copies_student"}
	if got := s.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Kinds = %v, want %v", got, want)
	}
}

func TestReviewStatus_Valid(t *testing.T) {
	for _, s := range []ReviewStatus{StatusPending, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range []ReviewStatus{"", "APPROVED", "done"} {
		if s.Valid() {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
