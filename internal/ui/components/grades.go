package components

import "strings"

// GradeLetters is the selectable order, best first.
var GradeLetters = []string{"S", "A", "B", "C", "D", "E", "F"}

// CycleGrade steps through GradeLetters; an empty or unknown grade starts at S (forward) or F (back).
func CycleGrade(current string, forward bool) string {
	current = strings.ToUpper(strings.TrimSpace(current))
	n := len(GradeLetters)
	for i, g := range GradeLetters {
		if g != current {
			continue
		}
		if forward {
			return GradeLetters[(i+1)%n]
		}
		return GradeLetters[(i+n-1)%n]
	}
	if forward {
		return GradeLetters[0]
	}
	return GradeLetters[n-1]
}

func ValidGradeLetter(letter string) bool {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for _, g := range GradeLetters {
		if g == letter {
			return true
		}
	}
	return false
}
