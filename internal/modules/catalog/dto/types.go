package dto

type SubjectsInput struct {
	Department string
	Semester   int
}

type SubjectOutput struct {
	Code    string
	Name    string
	Credits float64
}

type SubjectsOutput struct {
	Department   string
	Semester     int
	Subjects     []SubjectOutput
	TotalCredits float64
}
