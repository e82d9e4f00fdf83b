package api

import (
	"encoding/json"
	"testing"
)

func TestWindowV1_FieldNames_Stable(t *testing.T) {
	b, err := json.Marshal(WindowV1{ID: "c1:0-10", ContigID: "c1", Start: 0, End: 10, Length: 10, Genes: []string{"sul2"}})
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"id":"c1:0-10","contig_id":"c1","start":0,"end":10,"length":10,"genes":["sul2"]}`
	if string(b) != want {
		t.Fatalf("WindowV1 schema changed:\n got:  %s\n want: %s", b, want)
	}

	b, _ = json.Marshal(WindowV1{ID: "c1:0-1", ContigID: "c1", End: 1, Length: 1})
	if got := string(b); got != `{"id":"c1:0-1","contig_id":"c1","start":0,"end":1,"length":1}` {
		t.Fatalf("genes should be omitted when empty: %s", got)
	}
}
