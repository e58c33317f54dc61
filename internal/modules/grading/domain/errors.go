package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

// MissingGradeError names the first subject without a usable grade. Missing holds every
// offending code when the caller asked for all of them.
type MissingGradeError struct {
	SubjectCode string
	Missing     []string
}

func (e *MissingGradeError) Error() string {
	if len(e.Missing) > 1 {
		return fmt.Sprintf("missing grade for %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("missing grade for %s", e.SubjectCode)
}

func (e *MissingGradeError) Unwrap() error {
	return apperrors.ErrMissingGrade
}

type InvalidCustomSubjectError struct {
	Field  string
	Reason string
}

func (e *InvalidCustomSubjectError) Error() string {
	return fmt.Sprintf("custom subject %s: %s", e.Field, e.Reason)
}

func (e *InvalidCustomSubjectError) Unwrap() error {
	return apperrors.ErrInvalidSubject
}
