package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrMissingGrade   = errors.New("missing grade")
	ErrInvalidSubject = errors.New("invalid custom subject")
	ErrPersistence    = errors.New("persistence failure")
)
