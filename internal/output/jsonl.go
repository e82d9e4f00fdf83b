package output

import (
	"encoding/json"
	"io"

	"contigfilter/internal/extract"
)

func init() {
	Register(FormatJSONL, func(w io.Writer, _ Options) Writer {
		return &jsonlWriter{enc: json.NewEncoder(w)}
	})
}

// jsonlWriter streams one api.WindowV1 object per line.
type jsonlWriter struct {
	enc *json.Encoder
}

func (j *jsonlWriter) Write(e extract.Extracted) error { return j.enc.Encode(ToAPIWindow(e)) }

func (j *jsonlWriter) Close() error { return nil }
