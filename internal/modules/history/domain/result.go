package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

const (
	ModeCurriculum = "curriculum"
	ModeCustom     = "custom"
)

const (
	HistoryKey      = "cgpa:history"
	LatestKey       = "savedCGPA"
	ResultKeyPrefix = "cgpa:result:"

	CorruptHistoryKeyPrefix = "cgpa:history:corrupt:"
)

const (
	MinValue = 0
	MaxValue = 10

	MinSemester = 1
	MaxSemester = 8
)

type Context struct {
	Mode       string
	Department string
	Semester   int
}

// Key is "IT:3" for curriculum results and "custom" for custom ones.
func (c Context) Key() string {
	if c.Mode == ModeCustom {
		return ModeCustom
	}
	return fmt.Sprintf("%s:%d", c.Department, c.Semester)
}

// Label is the human form shown in tables.
func (c Context) Label() string {
	if c.Mode == ModeCustom {
		return "Custom"
	}
	if c.Department == "" {
		return fmt.Sprintf("Semester %d", c.Semester)
	}
	return fmt.Sprintf("%s Semester %d", c.Department, c.Semester)
}

func ResultKey(c Context) string {
	return ResultKeyPrefix + c.Key()
}

// CorruptHistoryKey names the slot a malformed history log is moved to before a new log starts.
func CorruptHistoryKey(at time.Time) string {
	return CorruptHistoryKeyPrefix + at.UTC().Format(time.RFC3339Nano)
}

type Result struct {
	Value        float64
	Context      Context
	SubjectCount int
	Timestamp    time.Time
}

func (r Result) Validate() error {
	if math.IsNaN(r.Value) || r.Value < MinValue || r.Value > MaxValue {
		return fmt.Errorf("cgpa %v outside %d-%d: %w", r.Value, MinValue, MaxValue, apperrors.ErrInvalidInput)
	}
	if r.SubjectCount < 1 {
		return fmt.Errorf("result needs at least one subject: %w", apperrors.ErrInvalidInput)
	}
	switch r.Context.Mode {
	case ModeCustom:
	case ModeCurriculum:
		if r.Context.Semester < MinSemester || r.Context.Semester > MaxSemester {
			return fmt.Errorf("semester %d outside %d-%d: %w", r.Context.Semester, MinSemester, MaxSemester, apperrors.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("unknown result mode %q: %w", r.Context.Mode, apperrors.ErrInvalidInput)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// Same reports whether two results describe the same save.
func (r Result) Same(other Result) bool {
	return r.Value == other.Value &&
		r.Context == other.Context &&
		r.SubjectCount == other.SubjectCount &&
		r.Timestamp.Equal(other.Timestamp)
}

type Stats struct {
	Count  int
	Mean   float64
	Max    float64
	Min    float64
	Latest Result
}

// Summarize expects results in chronological order; Latest is the last one.
func Summarize(results []Result) Stats {
	if len(results) == 0 {
		return Stats{}
	}
	out := Stats{Count: len(results), Max: results[0].Value, Min: results[0].Value}
	total := 0.0
	for _, r := range results {
		total += r.Value
		if r.Value > out.Max {
			out.Max = r.Value
		}
		if r.Value < out.Min {
			out.Min = r.Value
		}
	}
	out.Mean = math.Round(total/float64(len(results))*100) / 100
	out.Latest = results[len(results)-1]
	return out
}
