package report

import (
	"errors"
	"fmt"
)

// ErrInputFormat is wrapped by every error caused by report content.
var ErrInputFormat = errors.New("invalid report")

// FormatError locates a content problem in a report. Line is 1-based; 0
// means the problem is not tied to a line.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *FormatError) Unwrap() error { return ErrInputFormat }
