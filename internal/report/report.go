// Package report normalises gene-finder reports into interval hits.
//
// Two tab-separated layouts are accepted, matched by column name:
//
//	Contig          Position in contig   ("<start>..<stop>")
//	Contig id       Start                Stop
//
// Any other header is rejected with ErrInputFormat.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"contigfilter/internal/fileio"
	"contigfilter/internal/interval"
)

// maxLine bounds a single report row.
const maxLine = 16 * 1024 * 1024

// Load reads one report (plain, gzip or "-").
func Load(path string) ([]interval.Hit, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Parse(path, rc)
}

// LoadAll concatenates the hits of every report in argument order.
func LoadAll(paths []string) ([]interval.Hit, error) {
	var all []interval.Hit
	for _, p := range paths {
		hits, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, hits...)
	}
	return all, nil
}

// Parse reads a report from r; name is used in errors and as Hit.Source.
// Blank lines are skipped. The first non-blank line is the header. An empty
// input has no rows and yields no hits.
func Parse(name string, r io.Reader) ([]interval.Hit, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		lay    layout
		header bool
		hits   []interval.Hit
		ln     int
	)
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if !header {
			var err error
			if lay, err = detect(fields); err != nil {
				return nil, &FormatError{Path: name, Line: ln, Msg: err.Error()}
			}
			header = true
			continue
		}
		h, err := lay.hit(fields)
		if err != nil {
			return nil, &FormatError{Path: name, Line: ln, Msg: err.Error()}
		}
		h.Source = name
		hits = append(hits, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return hits, nil
}

// DetectShape reports which layout a header line uses.
func DetectShape(header string) (Shape, error) {
	lay, err := detect(strings.Split(strings.TrimRight(header, "\r\n"), "\t"))
	if err != nil {
		return ShapeUnknown, err
	}
	return lay.shape, nil
}
