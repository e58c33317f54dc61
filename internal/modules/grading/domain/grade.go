package domain

import (
	"fmt"
	"strings"
)

type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

var gradePoints = map[Grade]float64{
	GradeS: 10,
	GradeA: 9,
	GradeB: 8,
	GradeC: 7,
	GradeD: 6,
	GradeE: 5,
	GradeF: 0,
}

// Grades lists the letters from best to worst.
func Grades() []Grade {
	return []Grade{GradeS, GradeA, GradeB, GradeC, GradeD, GradeE, GradeF}
}

func ParseGrade(raw string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := gradePoints[g]; !ok {
		return "", fmt.Errorf("unknown grade %q", raw)
	}
	return g, nil
}

func (g Grade) Points() float64 {
	return gradePoints[g]
}

// Next cycles S -> A -> ... -> F -> S. The zero grade starts at S.
func (g Grade) Next() Grade {
	all := Grades()
	for i, candidate := range all {
		if candidate == g {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
