package dto

import "time"

const (
	ModeCurriculum = "curriculum"
	ModeCustom     = "custom"
)

type CurriculumInput struct {
	Department string
	Semester   int
	Grades     map[string]string
}

type CustomSubjectInput struct {
	Name    string
	Code    string
	Credits string
}

type CustomSubjectOutput struct {
	Name    string
	Code    string
	Credits float64
}

type CustomInput struct {
	Subjects []CustomSubjectInput
	Grades   map[string]string
}

type ClassificationOutput struct {
	Band       string
	BandColor  string
	Message    string
	Emoji      string
	Percentage float64
}

type ComputeOutput struct {
	Value          float64
	TotalPoints    float64
	TotalCredits   float64
	SubjectCount   int
	Mode           string
	Department     string
	Semester       int
	Timestamp      time.Time
	Classification ClassificationOutput
	Percentage     float64
}
