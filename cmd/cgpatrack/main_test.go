package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--dir", dir, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestComputeSaveAndHistory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := runCLI(t, dir, "compute", "curriculum", "--dept", "IT", "--sem", "1", "--all", "A", "--save")
	if err != nil {
		t.Fatalf("compute curriculum: %v", err)
	}
	if !strings.Contains(out, "CGPA 9.00") || !strings.Contains(out, "saved to history") {
		t.Fatalf("unexpected compute output:\n%s", out)
	}

	out, err = runCLI(t, dir, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if !strings.Contains(out, "IT Semester 1") || !strings.Contains(out, "9.00") {
		t.Fatalf("unexpected history output:\n%s", out)
	}

	out, err = runCLI(t, dir, "history", "show", "--dept", "it", "--sem", "1")
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	if !strings.Contains(out, "CGPA 9.00") {
		t.Fatalf("unexpected show output:\n%s", out)
	}

	out, err = runCLI(t, dir, "export", "--title", "Year One")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "exported 1 results") {
		t.Fatalf("unexpected export output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "reports", "year-one.md")); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}

func TestComputeCustomReportsMissingGrades(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := runCLI(t, dir, "compute", "custom",
		"--subject", "Data Structures,CS101,4",
		"--subject", "Discrete Maths,CS102,3",
		"--grade", "CS101=A", "--grade", "CS102=B")
	if err != nil {
		t.Fatalf("compute custom: %v", err)
	}
	if !strings.Contains(out, "CGPA 8.57") {
		t.Fatalf("unexpected custom output:\n%s", out)
	}

	_, err = runCLI(t, dir, "compute", "custom",
		"--subject", "Data Structures,CS101,4",
		"--subject", "Discrete Maths,CS102,3",
		"--grade", "CS101=A")
	if err == nil || !strings.Contains(err.Error(), "CS102") {
		t.Fatalf("expected missing grade for CS102, got %v", err)
	}

	_, err = runCLI(t, dir, "compute", "custom", "--subject", "Lab,LAB1,-1", "--grade", "LAB1=S")
	if err == nil {
		t.Fatalf("expected negative credits to be rejected")
	}
}

func TestClassifyAndEmptyHistory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := runCLI(t, dir, "classify", "9.5")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(out, "O") {
		t.Fatalf("expected band O, got:\n%s", out)
	}
	if _, err := runCLI(t, dir, "classify", "abc"); err == nil {
		t.Fatalf("expected invalid cgpa error")
	}

	out, err = runCLI(t, dir, "history", "stats")
	if err != nil {
		t.Fatalf("history stats: %v", err)
	}
	if !strings.Contains(out, "no saved results") {
		t.Fatalf("unexpected stats output:\n%s", out)
	}
	if _, err := runCLI(t, dir, "export"); err == nil {
		t.Fatalf("expected export to fail without history")
	}
}

func TestParseHelpers(t *testing.T) {
	t.Parallel()
	grades, err := parseGrades([]string{"CS101=a", " CS102 = B "})
	if err != nil {
		t.Fatalf("parse grades: %v", err)
	}
	if grades["CS101"] != "a" || grades["CS102"] != "B" {
		t.Fatalf("unexpected grades %v", grades)
	}
	if _, err := parseGrades([]string{"CS101"}); err == nil {
		t.Fatalf("expected error for missing letter separator")
	}

	s, err := parseCustomSubject("Signals, Systems,EE201,3.5")
	if err != nil {
		t.Fatalf("parse subject: %v", err)
	}
	if s.Name != "Signals, Systems" || s.Code != "EE201" || s.Credits != "3.5" {
		t.Fatalf("unexpected subject %+v", s)
	}
	if _, err := parseCustomSubject("only,two"); err == nil {
		t.Fatalf("expected error for short subject")
	}
}
