package output

import (
	"io"

	biofasta "github.com/biogo/biogo/io/seqio/fasta"

	"contigfilter/internal/extract"
)

// DefaultLineWidth matches the wrapping of common FASTA writers.
const DefaultLineWidth = 60

func init() {
	Register(FormatFASTA, func(w io.Writer, o Options) Writer {
		width := o.LineWidth
		if width <= 0 {
			width = DefaultLineWidth
		}
		return &fastaWriter{w: biofasta.NewWriter(w, width)}
	})
}

// fastaWriter streams each window as one FASTA record named
// "<contig>:<start>-<end>".
type fastaWriter struct {
	w *biofasta.Writer
}

func (f *fastaWriter) Write(e extract.Extracted) error {
	_, err := f.w.Write(e.Seq)
	return err
}

func (f *fastaWriter) Close() error { return nil }
