// internal/output/registry.go
package output

import (
	"fmt"
	"io"
	"sort"

	"contigfilter/internal/extract"
)

// Output formats.
const (
	FormatFASTA = "fasta"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
)

// Options are shared by all writers; each uses the fields it needs.
type Options struct {
	Header    bool // TSV column header, GFF version pragma
	LineWidth int  // FASTA sequence line width
}

// Writer serialises extracted windows. Close must be called once after the
// last Write; buffered formats emit their output there.
type Writer interface {
	extract.Sink
	Close() error
}

// Factory builds a Writer on top of w.
type Factory func(w io.Writer, o Options) Writer

// registry maps format name → factory. Format files register in init().
var registry = map[string]Factory{}

// Register adds or replaces a format (last wins).
func Register(format string, f Factory) { registry[format] = f }

// New returns the writer registered for format.
func New(format string, w io.Writer, o Options) (Writer, error) {
	f, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(w, o), nil
}

// Formats lists the registered format names in lexical order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
