package interval

import (
	"math"
	"sort"
)

type padded struct {
	lower, upper int
	gene         string
}

// Pad widens h by flank on both sides, clamping the lower bound at 0.
// A hit with Stop < Start is treated as the single point Start. The upper
// bound saturates at math.MaxInt.
func Pad(h Hit, flank int) (lower, upper int) {
	if flank < 0 {
		flank = 0
	}
	stop := h.Stop
	if stop < h.Start {
		stop = h.Start
	}
	lower = h.Start - flank
	if lower < 0 {
		lower = 0
	}
	if stop > math.MaxInt-flank {
		return lower, math.MaxInt
	}
	return lower, stop + flank
}

// Merge pads every hit, groups them by contig and merges overlapping padded
// intervals into disjoint windows. Intervals that only touch
// (next.lower == current.upper) are kept apart.
//
// The result does not depend on the order of hits.
func Merge(hits []Hit, flank int) WindowMap {
	groups := make(map[string][]padded)
	for _, h := range hits {
		lo, hi := Pad(h, flank)
		groups[h.ContigID] = append(groups[h.ContigID], padded{lower: lo, upper: hi, gene: h.Gene})
	}
	wm := make(WindowMap, len(groups))
	for id, ps := range groups {
		wm[id] = sweep(id, ps)
	}
	return wm
}

// sweep sorts ps by lower bound and folds it into windows. ps is non-empty.
// Equal lower bounds put the longer interval first so that zero-length
// intervals cannot split a window depending on input order.
func sweep(contig string, ps []padded) []Window {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].lower != ps[j].lower {
			return ps[i].lower < ps[j].lower
		}
		return ps[i].upper > ps[j].upper
	})

	var (
		out   []Window
		start = ps[0].lower
		stop  = ps[0].upper
		genes = map[string]struct{}{}
	)
	addGene(genes, ps[0].gene)
	for _, p := range ps[1:] {
		if p.lower < stop {
			if p.upper > stop {
				stop = p.upper
			}
			addGene(genes, p.gene)
			continue
		}
		out = append(out, Window{ContigID: contig, Lower: start, Upper: stop, Genes: sortedGenes(genes)})
		start, stop = p.lower, p.upper
		genes = map[string]struct{}{}
		addGene(genes, p.gene)
	}
	return append(out, Window{ContigID: contig, Lower: start, Upper: stop, Genes: sortedGenes(genes)})
}

func addGene(set map[string]struct{}, g string) {
	if g != "" {
		set[g] = struct{}{}
	}
}

func sortedGenes(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for g := range set {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}
