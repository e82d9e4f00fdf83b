package output

import (
	"fmt"
	"io"
	"strings"

	"contigfilter/internal/extract"
)

// TSVHeader is the column header of the tsv format.
const TSVHeader = "contig_id\tstart\tend\tlength\tgenes"

func init() {
	Register(FormatTSV, func(w io.Writer, o Options) Writer {
		return &tsvWriter{w: w, header: o.Header}
	})
}

// tsvWriter streams one row per window. The header is written with the
// first row, or on Close when there are no rows.
type tsvWriter struct {
	w       io.Writer
	header  bool
	started bool
}

func (t *tsvWriter) start() error {
	if t.started {
		return nil
	}
	t.started = true
	if !t.header {
		return nil
	}
	_, err := fmt.Fprintln(t.w, TSVHeader)
	return err
}

func (t *tsvWriter) Write(e extract.Extracted) error {
	if err := t.start(); err != nil {
		return err
	}
	genes := "-"
	if len(e.Genes) > 0 {
		genes = strings.Join(e.Genes, ",")
	}
	_, err := fmt.Fprintf(t.w, "%s\t%d\t%d\t%d\t%s\n", e.ContigID, e.Lower, e.Upper, e.Len(), genes)
	return err
}

func (t *tsvWriter) Close() error { return t.start() }
