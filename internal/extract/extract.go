// Package extract slices merged windows out of assembly records.
package extract

import (
	"fmt"
	"sort"

	"github.com/biogo/biogo/seq/linear"

	"contigfilter/internal/interval"
)

// Extracted is one window cut from a record. Window.Upper is already clamped
// to the record length and Seq.ID is Name(ContigID, Lower, Upper).
type Extracted struct {
	interval.Window
	Seq *linear.Seq
}

// Sink receives extracted records in output order.
type Sink interface {
	Write(Extracted) error
}

// Warnf reports a recoverable condition.
type Warnf func(format string, a ...any)

// Name is the identifier of an extracted sub-record.
func Name(contig string, lower, upper int) string {
	return fmt.Sprintf("%s:%d-%d", contig, lower, upper)
}

// Record cuts windows out of rec in the order given. A window whose clamped
// range is empty is skipped with a warning.
func Record(rec *linear.Seq, windows []interval.Window, warn Warnf) []Extracted {
	n := rec.Len()
	out := make([]Extracted, 0, len(windows))
	for _, w := range windows {
		hi := w.Upper
		if hi > n {
			hi = n
		}
		if hi <= w.Lower {
			if warn != nil {
				warn("skipping empty window %s on %s (length %d)", Name(rec.ID, w.Lower, w.Upper), rec.ID, n)
			}
			continue
		}
		w.Upper = hi
		sub := linear.NewSeq(Name(rec.ID, w.Lower, hi), rec.Seq[w.Lower:hi], rec.Alphabet())
		out = append(out, Extracted{Window: w, Seq: sub})
	}
	return out
}

// Stats counts what an Extractor has seen.
type Stats struct {
	Records int // assembly records read
	Matched int // records with at least one window
	Emitted int
	Skipped int // empty windows
}

// Extractor filters a stream of assembly records against a window map and
// forwards extracted sub-records to a Sink. Records without windows are
// dropped.
type Extractor struct {
	windows interval.WindowMap
	sink    Sink
	warn    Warnf
	seen    map[string]struct{}
	stats   Stats
}

func New(windows interval.WindowMap, sink Sink, warn Warnf) *Extractor {
	return &Extractor{windows: windows, sink: sink, warn: warn, seen: make(map[string]struct{}, len(windows))}
}

// Visit handles one assembly record; it matches the fasta.Stream callback.
func (x *Extractor) Visit(rec *linear.Seq) error {
	x.stats.Records++
	ws, ok := x.windows[rec.ID]
	if !ok {
		return nil
	}
	x.stats.Matched++
	x.seen[rec.ID] = struct{}{}

	outs := Record(rec, ws, x.warn)
	x.stats.Skipped += len(ws) - len(outs)
	for _, e := range outs {
		if err := x.sink.Write(e); err != nil {
			return err
		}
		x.stats.Emitted++
	}
	return nil
}

// Missing returns, sorted, the contigs that have windows but were never
// visited.
func (x *Extractor) Missing() []string {
	var out []string
	for id := range x.windows {
		if _, ok := x.seen[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (x *Extractor) Stats() Stats { return x.stats }
