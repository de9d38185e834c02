package document

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownKind = errors.New("unknown document kind")

// Phase1Documents are the kinds a student may submit with an initial
// loan application.
var Phase1Documents = []string{
	"form_101",
	"volunteer_doc",
	"id_copies_student",
	"consent_student_form",
	"consent_father_form",
	"id_copies_father",
	"consent_mother_form",
	"id_copies_mother",
	"guardian_consent",
	"guardian_income_cert",
	"guardian_id_copies",
	"guardian_income",
	"father_income_cert",
	"fa_id_copies_gov",
	"mother_income_cert",
	"mo_id_copies_gov",
	"single_parent_income_cert",
	"single_parent_income",
	"famo_income_cert",
	"famo_id_copies_gov",
	"family_status_cert",
	"father_income",
	"mother_income",
	"legal_status",
	"fam_id_copies_gov",
	"102_id_copies_gov",
}

// DisbursementDocuments are submitted each term once Phase 1 is approved.
// The two id copies are shared with Phase1Documents.
var DisbursementDocuments = []string{
	"disbursement_form",
	"expense_burden_form",
	"id_copies_student",
	"guardian_id_copies",
}

var (
	disbursementIndicators = setOf("disbursement_form", "expense_burden_form")
	phase1Kinds            = setOf(Phase1Documents...)
	disbursementKinds      = setOf(DisbursementDocuments...)
)

var defaultLabels = map[string]string{
	"form_101":                  "Loan application form (Kor Yor Sor 101)",
	"volunteer_doc":             "Volunteer activity record",
	"id_copies_student":         "Student national ID copy",
	"consent_student_form":      "Student consent form",
	"consent_father_form":       "Father consent form",
	"id_copies_father":          "Father national ID copy",
	"consent_mother_form":       "Mother consent form",
	"id_copies_mother":          "Mother national ID copy",
	"guardian_consent":          "Guardian consent form",
	"guardian_income_cert":      "Guardian income certificate",
	"guardian_id_copies":        "Guardian national ID copy",
	"guardian_income":           "Guardian income statement",
	"father_income_cert":        "Father income certificate",
	"fa_id_copies_gov":          "Certifying official ID copy (father)",
	"mother_income_cert":        "Mother income certificate",
	"mo_id_copies_gov":          "Certifying official ID copy (mother)",
	"single_parent_income_cert": "Single parent income certificate",
	"single_parent_income":      "Single parent income statement",
	"famo_income_cert":          "Family income certificate",
	"famo_id_copies_gov":        "Certifying official ID copy (family)",
	"family_status_cert":        "Family status certificate",
	"father_income":             "Father income statement",
	"mother_income":             "Mother income statement",
	"legal_status":              "Parents' legal status document",
	"fam_id_copies_gov":         "Certifying official ID copy (household)",
	"102_id_copies_gov":         "Kor Yor Sor 102 certifier ID copy",
	"disbursement_form":         "Disbursement confirmation form",
	"expense_burden_form":       "Tuition and living expense form",
}

// IsKnown reports whether kind belongs to either phase.
func IsKnown(kind string) bool {
	_, p1 := phase1Kinds[kind]
	_, d := disbursementKinds[kind]
	return p1 || d
}

// Catalog carries the human labels shown to officers.
type Catalog struct {
	labels map[string]string
}

type Entry struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

func DefaultCatalog() *Catalog {
	labels := make(map[string]string, len(defaultLabels))
	for k, v := range defaultLabels {
		labels[k] = v
	}
	return &Catalog{labels: labels}
}

type labelFile struct {
	Labels map[string]string `yaml:"labels"`
}

// LoadCatalog overlays labels read from YAML on the defaults:
//
//	labels:
//	  form_101: "แบบคำขอกู้ยืม กยศ.101"
func LoadCatalog(r io.Reader) (*Catalog, error) {
	c := DefaultCatalog()
	var f labelFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog labels: %w", err)
	}
	for kind, label := range f.Labels {
		if !IsKnown(kind) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
		if label != "" {
			c.labels[kind] = label
		}
	}
	return c, nil
}

// Label falls back to the raw kind for kinds without a label.
func (c *Catalog) Label(kind string) string {
	if l, ok := c.labels[kind]; ok {
		return l
	}
	return kind
}

// Documents lists the kinds required for a phase, in catalog order.
func (c *Catalog) Documents(p Phase) []Entry {
	var kinds []string
	switch p {
	case PhaseInitialApplication:
		kinds = Phase1Documents
	case PhaseDisbursement:
		kinds = DisbursementDocuments
	default:
		return nil
	}
	out := make([]Entry, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, Entry{Kind: k, Label: c.Label(k)})
	}
	return out
}

func setOf(kinds ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
