package analyze

// EmptyInputError indicates the resume text was empty or whitespace-only,
// the single declared failure mode of the analyzer.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "resume text is empty or unreadable"
}
