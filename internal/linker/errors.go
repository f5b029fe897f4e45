package linker

import (
	"weld/internal/diag"
)

// LinkError is the diagnostic payload exposed to external reporting
// frameworks. The level is always an error and the values list starts
// empty; there is no position information, since linked trees carry none.
//
// The linker itself never raises a LinkError for an unresolved name:
// absence is a normal resolution outcome, and reporting belongs to a
// later validation stage.
type LinkError struct {
	Code   diag.Code
	Level  diag.Severity
	Values []string
}

// NewLinkError builds the record for a symbolic code.
func NewLinkError(code diag.Code) LinkError {
	return LinkError{
		Code:   code,
		Level:  diag.SevError,
		Values: []string{},
	}
}
