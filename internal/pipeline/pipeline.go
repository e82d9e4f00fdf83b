// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"

	"contigfilter/internal/extract"
	"contigfilter/internal/fasta"
	"contigfilter/internal/interval"
	"contigfilter/internal/report"
)

// ErrNoHits means every report was empty. Callers treat it as a clean,
// output-free run.
var ErrNoHits = errors.New("no hits found in any report")

// Config controls the run.
type Config struct {
	Flank int // bases added on each side of a hit
}

// Stats summarises a run.
type Stats struct {
	Reports int
	Hits    int
	Windows int
	extract.Stats
}

// Run extracts the windows around every hit in reports from the assembly
// and writes them to sink in assembly order.
func Run(
	ctx context.Context,
	cfg Config,
	assembly string,
	reports []string,
	sink extract.Sink,
	warn extract.Warnf,
) (Stats, error) {
	st := Stats{Reports: len(reports)}
	if warn == nil {
		warn = func(string, ...any) {}
	}

	hits, err := report.LoadAll(reports)
	if err != nil {
		return st, err
	}
	st.Hits = len(hits)
	if len(hits) == 0 {
		return st, ErrNoHits
	}

	windows := interval.Merge(hits, cfg.Flank)
	st.Windows = windows.Len()

	x := extract.New(windows, sink, warn)
	err = fasta.Stream(ctx, assembly, x.Visit)
	st.Stats = x.Stats()
	if err != nil {
		return st, err
	}
	for _, id := range x.Missing() {
		warn("contig %q has hits but is not in %s", id, assembly)
	}
	return st, nil
}
