package dto

import "time"

type SaveInput struct {
	Value        float64
	Mode         string
	Department   string
	Semester     int
	SubjectCount int
	Timestamp    time.Time
}

type ContextInput struct {
	Mode       string
	Department string
	Semester   int
}

type ResultOutput struct {
	Value        float64
	Mode         string
	Department   string
	Semester     int
	ContextKey   string
	Label        string
	SubjectCount int
	Timestamp    time.Time
}

type StatsOutput struct {
	Count  int
	Mean   float64
	Max    float64
	Min    float64
	Latest ResultOutput
}
