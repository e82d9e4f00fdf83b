package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"syscall"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"contigfilter/internal/extract"
	"contigfilter/internal/interval"
	"contigfilter/pkg/api"
)

func sample() []extract.Extracted {
	rec := linear.NewSeq("c1", alphabet.BytesToLetters([]byte("ACGTACGTAC")), alphabet.DNA)
	return extract.Record(rec, []interval.Window{
		{ContigID: "c1", Lower: 2, Upper: 8, Genes: []string{"blaTEM-1B", "sul2"}},
		{ContigID: "c1", Lower: 9, Upper: 500},
	}, nil)
}

func render(t *testing.T, format string, o Options, list []extract.Extracted) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := New(format, &buf, o)
	if err != nil {
		t.Fatalf("New(%s): %v", format, err)
	}
	for _, e := range list {
		if err := w.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.String()
}

func TestFormatsRegistered(t *testing.T) {
	want := []string{FormatFASTA, FormatGFF, FormatJSON, FormatJSONL, FormatTSV}
	if got := Formats(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Formats = %v, want %v", got, want)
	}
	if _, err := New("xml", &bytes.Buffer{}, Options{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFASTA(t *testing.T) {
	out := render(t, FormatFASTA, Options{LineWidth: 4}, sample())
	if !strings.HasPrefix(out, ">c1:2-8\nGTAC\nGT\n") {
		t.Fatalf("unexpected FASTA output:\n%s", out)
	}
	if !strings.Contains(out, ">c1:9-10\nC\n") {
		t.Fatalf("clamped record missing:\n%s", out)
	}
}

func TestTSV(t *testing.T) {
	want := TSVHeader + "\n" +
		"c1\t2\t8\t6\tblaTEM-1B,sul2\n" +
		"c1\t9\t10\t1\t-\n"
	if got := render(t, FormatTSV, Options{Header: true}, sample()); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
	if got := render(t, FormatTSV, Options{}, sample()); strings.Contains(got, "contig_id") {
		t.Fatalf("header written despite Header=false:\n%s", got)
	}
	if got := render(t, FormatTSV, Options{Header: true}, nil); got != TSVHeader+"\n" {
		t.Fatalf("empty table = %q", got)
	}
}

func TestJSON(t *testing.T) {
	out := render(t, FormatJSON, Options{}, sample())
	var got []api.WindowV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	want := []api.WindowV1{
		{ID: "c1:2-8", ContigID: "c1", Start: 2, End: 8, Length: 6, Genes: []string{"blaTEM-1B", "sul2"}},
		{ID: "c1:9-10", ContigID: "c1", Start: 9, End: 10, Length: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
	if empty := render(t, FormatJSON, Options{}, nil); strings.TrimSpace(empty) != "[]" {
		t.Fatalf("empty JSON = %q", empty)
	}
}

func TestJSONL(t *testing.T) {
	out := render(t, FormatJSONL, Options{}, sample())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), out)
	}
	var w api.WindowV1
	if err := json.Unmarshal([]byte(lines[1]), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.ID != "c1:9-10" || w.Length != 1 || w.Genes != nil {
		t.Fatalf("line 2 = %+v", w)
	}
	if empty := render(t, FormatJSONL, Options{}, nil); empty != "" {
		t.Fatalf("empty JSONL = %q", empty)
	}
}

func TestGFF(t *testing.T) {
	out := render(t, FormatGFF, Options{}, sample())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 features, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "c1\t"+GFFSource+"\tregion\t3\t8\t") {
		t.Fatalf("feature 1 = %q", lines[0])
	}
	if !strings.Contains(lines[0], "blaTEM-1B,sul2") || !strings.Contains(lines[0], "c1:2-8") {
		t.Fatalf("feature 1 attributes = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "c1\t"+GFFSource+"\tregion\t10\t10\t") {
		t.Fatalf("feature 2 = %q", lines[1])
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) {
		t.Fatal("EPIPE not recognised")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(syscall.ENOENT) {
		t.Fatal("false positive")
	}
}

func TestGFF_PragmaDeferredUntilOutput(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(FormatGFF, &buf, Options{Header: true})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("written on construction: %q", buf.String())
	}
	if err := w.Write(sample()[0]); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "##gff-version") || strings.Count(buf.String(), "##gff-version") != 1 {
		t.Fatalf("pragma missing or repeated:\n%s", buf.String())
	}
	_ = w.Close()
	if strings.Count(buf.String(), "##gff-version") != 1 {
		t.Fatalf("pragma repeated on Close:\n%s", buf.String())
	}

	if empty := render(t, FormatGFF, Options{Header: true}, nil); !strings.HasPrefix(empty, "##gff-version") {
		t.Fatalf("empty GFF with header = %q", empty)
	}
}
