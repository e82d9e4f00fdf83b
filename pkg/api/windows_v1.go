// pkg/api/windows_v1.go
package api

// WindowV1 is the stable JSON schema for one extracted window.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type WindowV1 struct {
	ID       string   `json:"id"` // "<contig_id>:<start>-<end>"
	ContigID string   `json:"contig_id"`
	Start    int      `json:"start"` // 0-based, inclusive
	End      int      `json:"end"`   // exclusive, clamped to contig length
	Length   int      `json:"length"`
	Genes    []string `json:"genes,omitempty"`
}
