package document

// Phase is derived from the set of document kinds in a submission, never
// stored. PhaseUndetermined means callers must take no downstream action.
type Phase string

const (
	PhaseUndetermined       Phase = ""
	PhaseInitialApplication Phase = "initial_application"
	PhaseDisbursement       Phase = "disbursement"
)

// DetectPhase classifies a set of document kinds. A disbursement indicator
// wins over any Phase 1 kind because the two catalogs share id copies.
func DetectPhase(kinds []string) Phase {
	if len(kinds) == 0 {
		return PhaseUndetermined
	}
	for _, k := range kinds {
		if _, ok := disbursementIndicators[k]; ok {
			return PhaseDisbursement
		}
	}
	for _, k := range kinds {
		if _, ok := phase1Kinds[k]; ok {
			return PhaseInitialApplication
		}
	}
	return PhaseUndetermined
}
