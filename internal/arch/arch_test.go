// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

const module = "contigfilter/"

type pkg struct {
	ImportPath string
	Imports    []string
}

// surface packages that core stages must never depend on
var surface = []string{
	module + "internal/app", module + "internal/appshell",
	module + "internal/cli", module + "internal/cliutil",
	module + "cmd/",
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	with := func(extra ...string) []string { return append(append([]string{}, surface...), extra...) }
	bans := map[string][]string{
		module + "internal/interval": with(
			module+"internal/report", module+"internal/extract", module+"internal/fasta",
			module+"internal/output", module+"internal/pipeline",
		),
		module + "internal/report": with(
			module+"internal/extract", module+"internal/fasta",
			module+"internal/output", module+"internal/pipeline",
		),
		module + "internal/extract": with(
			module+"internal/report", module+"internal/fasta",
			module+"internal/output", module+"internal/pipeline",
		),
		module + "internal/fasta":    with(module+"internal/output", module+"internal/pipeline"),
		module + "internal/output":   with(module+"internal/pipeline", module+"internal/report"),
		module + "internal/pipeline": with(module+"internal/output"),
		module + "pkg/api":           with(module + "internal/"),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, module) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
