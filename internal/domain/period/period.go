package period

import (
	"errors"
	"strings"
)

var (
	ErrMissingPeriod = errors.New("academic year and term are required")
	ErrMissingUser   = errors.New("user id is required")
)

// Period identifies one academic term, e.g. {"2567", "1"}.
type Period struct {
	AcademicYear string `json:"academic_year"`
	Term         string `json:"term"`
}

func (p Period) Validate() error {
	if strings.TrimSpace(p.AcademicYear) == "" || strings.TrimSpace(p.Term) == "" {
		return ErrMissingPeriod
	}
	return nil
}

func (p Period) String() string { return p.AcademicYear + "/" + p.Term }

// StudentKey is the composite identity (user, academic year, term) used for
// submissions and process records. It is comparable and safe as a map key.
type StudentKey struct {
	UserID string `json:"user_id"`
	Period
}

func NewKey(userID, academicYear, term string) StudentKey {
	return StudentKey{UserID: userID, Period: Period{AcademicYear: academicYear, Term: term}}
}

func (k StudentKey) Validate() error {
	if strings.TrimSpace(k.UserID) == "" {
		return ErrMissingUser
	}
	return k.Period.Validate()
}

func (k StudentKey) String() string { return k.UserID + "@" + k.Period.String() }

// Settings is the portal-wide configuration record: the period officers are
// currently working in and whether students may submit documents.
type Settings struct {
	Current            Period
	SubmissionsEnabled bool
}

// Resolve fills an empty year/term from the current period.
func (s Settings) Resolve(p Period) Period {
	if strings.TrimSpace(p.AcademicYear) == "" {
		p.AcademicYear = s.Current.AcademicYear
	}
	if strings.TrimSpace(p.Term) == "" {
		p.Term = s.Current.Term
	}
	return p
}
