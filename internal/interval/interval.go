// Package interval turns gene hits on contigs into padded, merged extraction
// windows.
//
// Windows are half-open [Lower, Upper) over 0-based positions. Hit
// coordinates are used exactly as the gene finder reported them.
package interval

import (
	"fmt"
	"sort"
)

// DefaultFlank is the context retained on each side of a hit.
const DefaultFlank = 50000

// Hit is one reported gene location.
type Hit struct {
	ContigID string
	Start    int
	Stop     int
	Gene     string // optional
	Source   string // report the hit came from
}

func (h Hit) String() string { return fmt.Sprintf("%s:%d-%d", h.ContigID, h.Start, h.Stop) }

// Window is a merged extraction range on one contig.
type Window struct {
	ContigID string
	Lower    int
	Upper    int
	Genes    []string // sorted, unique
}

// Len is Upper-Lower; it is never negative for merged windows.
func (w Window) Len() int { return w.Upper - w.Lower }

// WindowMap holds, per contig, windows ordered by Lower with no overlap.
// It is built once by Merge and only read afterwards.
type WindowMap map[string][]Window

// Contigs returns the contig ids in lexical order.
func (m WindowMap) Contigs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of windows across all contigs.
func (m WindowMap) Len() int {
	n := 0
	for _, ws := range m {
		n += len(ws)
	}
	return n
}
