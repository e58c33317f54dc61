package dto

type ExportInput struct {
	Title string
	Dir   string
}

type ExportOutput struct {
	Path  string
	Count int
}
