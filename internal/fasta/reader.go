// internal/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"contigfilter/internal/fileio"
)

// Stream opens path (plain, gzip or "-") and calls emit once per record in
// file order. Only the current record is held in memory.
func Stream(ctx context.Context, path string, emit func(*linear.Seq) error) error {
	rc, err := fileio.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := StreamReader(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// StreamReader is Stream over an already opened reader.
// Cancellation is checked before every record.
func StreamReader(ctx context.Context, r io.Reader, emit func(*linear.Seq) error) error {
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !sc.Next() {
			break
		}
		if err := emit(sc.Seq().(*linear.Seq)); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}
