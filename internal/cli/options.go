// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"contigfilter/internal/cliutil"
	"contigfilter/internal/interval"
	"contigfilter/internal/output"
)

// Options holds all CLI flags and arguments. Flag values arrive through
// viper, so the mapstructure tags must match the flag names.
type Options struct {
	Flank     int    `mapstructure:"flank"`
	Output    string `mapstructure:"output"`
	NoHeader  bool   `mapstructure:"no-header"`
	LineWidth int    `mapstructure:"line-width"`
	Quiet     bool   `mapstructure:"quiet"`
	Config    string `mapstructure:"config"`

	Assembly string   `mapstructure:"-"`
	Reports  []string `mapstructure:"-"`
}

// Header reports whether tabular output starts with a header line.
func (o Options) Header() bool { return !o.NoHeader }

// Register adds every flag to fs with its default.
func Register(fs *pflag.FlagSet) {
	fs.Int("flank", interval.DefaultFlank, "bases added on each side of a hit")
	fs.StringP("output", "o", output.FormatFASTA,
		"output format: "+strings.Join(output.Formats(), " | "))
	fs.Bool("no-header", false, "suppress header line in tsv/gff output")
	fs.Int("line-width", output.DefaultLineWidth, "FASTA line width")
	fs.BoolP("quiet", "q", false, "suppress warnings and info messages on stderr")
	fs.String("config", "", "read defaults from a YAML, TOML or JSON config file")
}

// SetPositionals takes the assembly path and the report paths from args.
// Report arguments may be glob patterns.
func (o *Options) SetPositionals(args []string) error {
	if len(args) < 2 {
		return errors.New("need an assembly and at least one report")
	}
	reports, err := cliutil.ExpandPositionals(args[1:])
	if err != nil {
		return err
	}
	o.Assembly = args[0]
	o.Reports = reports
	return nil
}

// Validate checks values that flag parsing alone cannot.
func (o Options) Validate() error {
	if o.Flank < 0 {
		return fmt.Errorf("--flank must be ≥ 0, got %d", o.Flank)
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("--line-width must be > 0, got %d", o.LineWidth)
	}
	known := false
	for _, f := range output.Formats() {
		if o.Output == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if cliutil.CountStdin(append([]string{o.Assembly}, o.Reports...)...) > 1 {
		return errors.New("standard input ('-') can be used for only one input")
	}
	return nil
}
