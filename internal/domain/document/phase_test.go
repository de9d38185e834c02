package document

import "testing"

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name  string
		kinds []string
		want  Phase
	}{
		{"empty", nil, PhaseUndetermined},
		{"unknown only", []string{"selfie", "transcript"}, PhaseUndetermined},
		{"phase 1 only", []string{"form_101", "id_copies_student", "father_income_cert"}, PhaseInitialApplication},
		{"shared kinds only", []string{"id_copies_student", "guardian_id_copies"}, PhaseInitialApplication},
		{"disbursement form alone", []string{"disbursement_form"}, PhaseDisbursement},
		{"expense burden alone", []string{"expense_burden_form"}, PhaseDisbursement},
		{"disbursement with shared kinds", []string{"id_copies_student", "disbursement_form", "guardian_id_copies"}, PhaseDisbursement},
		{"disbursement wins over phase 1", []string{"form_101", "consent_father_form", "disbursement_form"}, PhaseDisbursement},
		{"phase 1 mixed with unknown", []string{"transcript", "volunteer_doc"}, PhaseInitialApplication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPhase(tt.kinds); got != tt.want {
				t.Fatalf("DetectPhase(%v) = %q, want %q", tt.kinds, got, tt.want)
			}
		})
	}
}

func TestDetectPhase_DisbursementFormAlwaysWins(t *testing.T) {
	for _, k := range Phase1Documents {
		got := DetectPhase([]string{k, "disbursement_form"})
		if got != PhaseDisbursement {
			t.Fatalf("with %q: got %q, want disbursement", k, got)
		}
	}
}

func TestCatalogSizes(t *testing.T) {
	if len(Phase1Documents) != 26 {
		t.Fatalf("phase 1 catalog has %d kinds, want 26", len(Phase1Documents))
	}
	if len(phase1Kinds) != len(Phase1Documents) {
		t.Fatalf("duplicate kinds in phase 1 catalog")
	}
	for _, k := range []string{"id_copies_student", "guardian_id_copies"} {
		if _, ok := phase1Kinds[k]; !ok {
			t.Fatalf("%q missing from phase 1", k)
		}
		if _, ok := disbursementKinds[k]; !ok {
			t.Fatalf("%q missing from disbursement", k)
		}
	}
}
