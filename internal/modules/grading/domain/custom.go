package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

func NewCustomSubject(name, code, credits string) (Subject, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	credits = strings.TrimSpace(credits)
	if name == "" {
		return Subject{}, &InvalidCustomSubjectError{Field: "name", Reason: "is required"}
	}
	if code == "" {
		return Subject{}, &InvalidCustomSubjectError{Field: "code", Reason: "is required"}
	}
	if credits == "" {
		return Subject{}, &InvalidCustomSubjectError{Field: "credits", Reason: "is required"}
	}
	value, err := strconv.ParseFloat(credits, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Subject{}, &InvalidCustomSubjectError{Field: "credits", Reason: fmt.Sprintf("%q is not a number", credits)}
	}
	if value <= 0 {
		return Subject{}, &InvalidCustomSubjectError{Field: "credits", Reason: "must be greater than zero"}
	}
	return Subject{Code: code, Name: name, Credits: value}, nil
}

// CustomSubjectList keeps subjects in entry order. Codes may repeat; repeated codes share one
// grade selection when computed.
type CustomSubjectList struct {
	subjects []Subject
}

func (l *CustomSubjectList) Add(name, code, credits string) (Subject, error) {
	subject, err := NewCustomSubject(name, code, credits)
	if err != nil {
		return Subject{}, err
	}
	l.subjects = append(l.subjects, subject)
	return subject, nil
}

func (l *CustomSubjectList) Remove(index int) error {
	if index < 0 || index >= len(l.subjects) {
		return fmt.Errorf("remove custom subject %d: %w", index, apperrors.ErrInvalidInput)
	}
	l.subjects = append(l.subjects[:index], l.subjects[index+1:]...)
	return nil
}

func (l *CustomSubjectList) Len() int {
	return len(l.subjects)
}

func (l *CustomSubjectList) Subjects() []Subject {
	out := make([]Subject, len(l.subjects))
	copy(out, l.subjects)
	return out
}
