package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/domain"
)

type record struct {
	Value        float64 `json:"value"`
	Mode         string  `json:"mode"`
	Department   string  `json:"department,omitempty"`
	Semester     int     `json:"semester,omitempty"`
	SubjectCount int     `json:"subjectCount"`
	IsCustom     bool    `json:"isCustom"`
	Timestamp    string  `json:"timestamp"`
}

func encodeResult(r domain.Result) (string, error) {
	payload, err := json.Marshal(record{
		Value:        r.Value,
		Mode:         r.Context.Mode,
		Department:   r.Context.Department,
		Semester:     r.Context.Semester,
		SubjectCount: r.SubjectCount,
		IsCustom:     r.Context.Mode == domain.ModeCustom,
		Timestamp:    r.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(payload), nil
}

// decodeResult accepts current records and the older shape that stored totalSubjects and
// semester "Custom" with no mode field.
func decodeResult(raw string) (domain.Result, error) {
	if !gjson.Valid(raw) {
		return domain.Result{}, fmt.Errorf("malformed json")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return domain.Result{}, fmt.Errorf("record is not an object")
	}
	value, err := number(doc.Get("value"))
	if err != nil {
		return domain.Result{}, fmt.Errorf("value: %w", err)
	}
	countField := doc.Get("subjectCount")
	if !countField.Exists() {
		countField = doc.Get("totalSubjects")
	}
	count, err := number(countField)
	if err != nil {
		return domain.Result{}, fmt.Errorf("subject count: %w", err)
	}
	semester := doc.Get("semester")
	mode := doc.Get("mode").String()
	if mode == "" {
		mode = domain.ModeCurriculum
		if doc.Get("isCustom").Bool() || strings.EqualFold(semester.String(), "custom") {
			mode = domain.ModeCustom
		}
	}
	ctx := domain.Context{Mode: mode}
	if mode == domain.ModeCurriculum {
		sem, err := number(semester)
		if err != nil {
			return domain.Result{}, fmt.Errorf("semester: %w", err)
		}
		ctx.Department = strings.ToUpper(strings.TrimSpace(doc.Get("department").String()))
		ctx.Semester = int(sem)
	}
	ts, err := time.Parse(time.RFC3339Nano, doc.Get("timestamp").String())
	if err != nil {
		return domain.Result{}, fmt.Errorf("timestamp: %w", err)
	}
	result := domain.Result{Value: value, Context: ctx, SubjectCount: int(count), Timestamp: ts.UTC()}
	if err := result.Validate(); err != nil {
		return domain.Result{}, err
	}
	return result, nil
}

func number(field gjson.Result) (float64, error) {
	switch field.Type {
	case gjson.Number:
		return field.Num, nil
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(field.Str), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", field.Str)
		}
		return v, nil
	case gjson.Null:
		if !field.Exists() {
			return 0, fmt.Errorf("missing")
		}
		return 0, fmt.Errorf("null")
	default:
		return 0, fmt.Errorf("unexpected %s", field.Type)
	}
}
