// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"contigfilter/internal/extract"
	"contigfilter/pkg/api"
)

func init() {
	Register(FormatJSON, func(w io.Writer, _ Options) Writer {
		return &jsonWriter{w: w, list: []api.WindowV1{}}
	})
}

// ToAPIWindow converts an extracted window to the stable wire schema (v1).
func ToAPIWindow(e extract.Extracted) api.WindowV1 {
	return api.WindowV1{
		ID:       extract.Name(e.ContigID, e.Lower, e.Upper),
		ContigID: e.ContigID,
		Start:    e.Lower,
		End:      e.Upper,
		Length:   e.Len(),
		Genes:    append([]string(nil), e.Genes...),
	}
}

// jsonWriter buffers windows and writes one indented JSON array on Close.
type jsonWriter struct {
	w    io.Writer
	list []api.WindowV1
}

func (j *jsonWriter) Write(e extract.Extracted) error {
	j.list = append(j.list, ToAPIWindow(e))
	return nil
}

func (j *jsonWriter) Close() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.list)
}
