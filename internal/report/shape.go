package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"contigfilter/internal/interval"
)

// Column names recognised in gene-finder reports.
const (
	ColContig   = "Contig"
	ColPosition = "Position in contig"

	ColContigID = "Contig id"
	ColStart    = "Start"
	ColStop     = "Stop"
)

// Optional gene label columns, in order of preference.
var (
	positionGeneCols = []string{"Resistance gene", "Virulence factor"}
	coordGeneCols    = []string{"Element symbol", "Gene symbol"}
)

// Shape identifies the column layout of a report.
type Shape int

const (
	ShapeUnknown  Shape = iota
	ShapePosition       // Contig + "Position in contig" (ResFinder style)
	ShapeCoords         // "Contig id" + Start + Stop (AMRFinderPlus style)
)

func (s Shape) String() string {
	switch s {
	case ShapePosition:
		return "position"
	case ShapeCoords:
		return "coords"
	default:
		return "unknown"
	}
}

var positionRE = regexp.MustCompile(`^(\d+)\.\.(\d+)$`)

// ParsePosition splits a "<start>..<stop>" field.
func ParsePosition(s string) (start, stop int, err error) {
	m := positionRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("position %q does not match <start>..<stop>", s)
	}
	if start, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, fmt.Errorf("position %q: %v", s, err)
	}
	if stop, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, fmt.Errorf("position %q: %v", s, err)
	}
	return start, stop, nil
}

// positionRow is one ShapePosition row.
type positionRow struct {
	contig, position, gene string
}

func (r positionRow) hit() (interval.Hit, error) {
	toks := strings.Fields(r.contig)
	if len(toks) == 0 {
		return interval.Hit{}, fmt.Errorf("empty %q", ColContig)
	}
	start, stop, err := ParsePosition(r.position)
	if err != nil {
		return interval.Hit{}, err
	}
	return interval.Hit{ContigID: toks[0], Start: start, Stop: stop, Gene: r.gene}, nil
}

// coordRow is one ShapeCoords row.
type coordRow struct {
	contigID, start, stop, gene string
}

func (r coordRow) hit() (interval.Hit, error) {
	id := strings.TrimSpace(r.contigID)
	if id == "" {
		return interval.Hit{}, fmt.Errorf("empty %q", ColContigID)
	}
	start, err := coord(ColStart, r.start)
	if err != nil {
		return interval.Hit{}, err
	}
	stop, err := coord(ColStop, r.stop)
	if err != nil {
		return interval.Hit{}, err
	}
	return interval.Hit{ContigID: id, Start: start, Stop: stop, Gene: r.gene}, nil
}

func coord(col, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", col, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s %d is negative", col, n)
	}
	return n, nil
}

// layout maps a report header to the columns a Shape needs. Missing
// optional columns are -1.
type layout struct {
	shape    Shape
	contig   int
	position int
	start    int
	stop     int
	gene     int
}

func detect(header []string) (layout, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	col := func(names ...string) int {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i
			}
		}
		return -1
	}

	if c := col(ColContig); c >= 0 {
		p := col(ColPosition)
		if p < 0 {
			return layout{}, fmt.Errorf("column %q present but %q missing", ColContig, ColPosition)
		}
		return layout{shape: ShapePosition, contig: c, position: p, start: -1, stop: -1, gene: col(positionGeneCols...)}, nil
	}
	c, s, e := col(ColContigID), col(ColStart), col(ColStop)
	if c >= 0 && s >= 0 && e >= 0 {
		return layout{shape: ShapeCoords, contig: c, position: -1, start: s, stop: e, gene: col(coordGeneCols...)}, nil
	}
	return layout{}, fmt.Errorf("unrecognised header: need %q and %q, or %q, %q and %q",
		ColContig, ColPosition, ColContigID, ColStart, ColStop)
}

func (l layout) hit(fields []string) (interval.Hit, error) {
	get := func(i int, name string) (string, error) {
		if i >= len(fields) {
			return "", fmt.Errorf("row has %d fields, missing %q", len(fields), name)
		}
		return fields[i], nil
	}
	gene := ""
	if l.gene >= 0 && l.gene < len(fields) {
		gene = strings.TrimSpace(fields[l.gene])
	}

	switch l.shape {
	case ShapePosition:
		contig, err := get(l.contig, ColContig)
		if err != nil {
			return interval.Hit{}, err
		}
		pos, err := get(l.position, ColPosition)
		if err != nil {
			return interval.Hit{}, err
		}
		return positionRow{contig: contig, position: pos, gene: gene}.hit()
	case ShapeCoords:
		id, err := get(l.contig, ColContigID)
		if err != nil {
			return interval.Hit{}, err
		}
		start, err := get(l.start, ColStart)
		if err != nil {
			return interval.Hit{}, err
		}
		stop, err := get(l.stop, ColStop)
		if err != nil {
			return interval.Hit{}, err
		}
		return coordRow{contigID: id, start: start, stop: stop, gene: gene}.hit()
	}
	return interval.Hit{}, fmt.Errorf("unknown report shape")
}
