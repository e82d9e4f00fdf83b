package output

import (
	"io"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"contigfilter/internal/extract"
)

// GFFSource is the source column of emitted features.
const GFFSource = "filter-contigs"

func init() {
	Register(FormatGFF, func(w io.Writer, o Options) Writer {
		return &gffWriter{out: w, header: o.Header}
	})
}

// gffWriter emits one "region" feature per window. gff.Feature holds
// 0-based half-open coordinates and the writer prints them 1-based.
//
// gff.NewWriter prints the version pragma when it is built, so the writer
// is created on the first Write, or on Close when there are no features.
type gffWriter struct {
	out    io.Writer
	header bool
	w      *gff.Writer
}

func (g *gffWriter) start() {
	if g.w == nil {
		g.w = gff.NewWriter(g.out, 60, g.header)
	}
}

func (g *gffWriter) Write(e extract.Extracted) error {
	g.start()
	attrs := gff.Attributes{{Tag: "ID", Value: `"` + extract.Name(e.ContigID, e.Lower, e.Upper) + `"`}}
	if len(e.Genes) > 0 {
		attrs = append(attrs, gff.Attribute{Tag: "genes", Value: `"` + strings.Join(e.Genes, ",") + `"`})
	}
	_, err := g.w.Write(&gff.Feature{
		SeqName:        e.ContigID,
		Source:         GFFSource,
		Feature:        "region",
		FeatStart:      e.Lower,
		FeatEnd:        e.Upper,
		FeatStrand:     seq.None,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: attrs,
	})
	return err
}

func (g *gffWriter) Close() error {
	g.start()
	return nil
}
