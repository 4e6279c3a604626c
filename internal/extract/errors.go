package extract

import "fmt"

// ValidationError indicates the file failed pre-extraction checks:
// missing, empty, oversized or an unsupported type. No extraction is
// attempted when validation fails.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid file %s: %s", e.Path, e.Reason)
}
