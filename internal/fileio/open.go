// internal/fileio/open.go
package fileio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// gzipReadCloser closes the decompressor and then the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file io.Closer
}

func (g *gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open returns a reader for path. "-" reads standard input. Gzip input is
// detected by its magic number (1F 8B) or a .gz suffix, so compressed
// assemblies and reports can be passed without unpacking them first.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return sniff(io.NopCloser(os.Stdin), os.Stdin, false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return sniff(fh, fh, strings.HasSuffix(path, ".gz"))
}

func sniff(c io.Closer, r io.Reader, gz bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gz = true
	}
	if !gz {
		return struct {
			io.Reader
			io.Closer
		}{br, c}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return &gzipReadCloser{Reader: gr, file: c}, nil
}
