// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a "WARN:" diagnostic line unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	logf(dst, quiet, "WARN", format, a...)
}

// Infof writes an "INFO:" diagnostic line unless quiet is set.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	logf(dst, quiet, "INFO", format, a...)
}

func logf(dst io.Writer, quiet bool, level, format string, a ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, level+": "+format+"\n", a...)
}
