package slug_test

import (
	"strings"
	"testing"

	"github.com/teamit2026-cmd/cgpatracker/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"CGPA History":        "cgpa-history",
		"  IT / Semester 3  ": "it-semester-3",
		"A+ semesters":        "a-plus-semesters",
		"***":                 "cgpa-report",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("slug.Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeCapsLength(t *testing.T) {
	t.Parallel()
	got := slug.Make(strings.Repeat("semester ", 20))
	if len(got) > 60 || strings.HasSuffix(got, "-") {
		t.Fatalf("unexpected slug %q", got)
	}
}
