package domain

import "math"

type Subject struct {
	Code    string
	Name    string
	Credits float64
}

// MissingPolicy decides how many missing grades are reported before Compute gives up.
type MissingPolicy int

const (
	FirstMissing MissingPolicy = iota
	AllMissing
)

type Computation struct {
	Value        float64
	TotalPoints  float64
	TotalCredits float64
	SubjectCount int
}

// Compute returns the credit-weighted grade point average rounded to two decimals.
// Selections are raw letters keyed by subject code; unknown letters count as missing.
func Compute(subjects []Subject, selections map[string]string, policy MissingPolicy) (Computation, error) {
	var missing []string
	out := Computation{SubjectCount: len(subjects)}
	for _, subject := range subjects {
		grade, err := ParseGrade(selections[subject.Code])
		if err != nil {
			if policy == FirstMissing {
				return Computation{}, &MissingGradeError{SubjectCode: subject.Code, Missing: []string{subject.Code}}
			}
			missing = append(missing, subject.Code)
			continue
		}
		out.TotalPoints += grade.Points() * subject.Credits
		out.TotalCredits += subject.Credits
	}
	if len(missing) > 0 {
		return Computation{}, &MissingGradeError{SubjectCode: missing[0], Missing: missing}
	}
	if out.TotalCredits == 0 {
		return out, nil
	}
	out.Value = Round2(out.TotalPoints / out.TotalCredits)
	return out, nil
}

// Round2 rounds half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EstimatedPercentage converts a CGPA with the common (cgpa - 0.75) x 10 rule.
func EstimatedPercentage(cgpa float64) float64 {
	pct := math.Round((cgpa*10-7.5)*10) / 10
	if pct < 0 {
		return 0
	}
	return pct
}
