// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"contigfilter/internal/cli"
	"contigfilter/internal/cmdutil"
	"contigfilter/internal/output"
	"contigfilter/internal/pipeline"
	"contigfilter/internal/report"
	"contigfilter/internal/version"
)

// Name is the binary name shown in usage and version output.
const Name = "filter-contigs"

// EnvPrefix prefixes environment variables that override flag defaults,
// e.g. FILTER_CONTIGS_FLANK.
const EnvPrefix = "FILTER_CONTIGS"

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags or malformed report
	ExitIO       = 3
	ExitCanceled = 130
)

func newCommand(run func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   Name + " [flags] <assembly> <report>...",
		Short: "Extract hit-flanking regions from an assembly",
		Long: `Extract the regions of an assembly that surround gene-finder hits.

Hits from every report are padded by --flank bases on each side, merged
per contig where they overlap and cut out of the assembly. Reports are
tab-separated tables with either a "Contig" + "Position in contig"
(start..stop) pair or "Contig id" + "Start" + "Stop" columns.
Inputs may be gzip-compressed; "-" reads one of them from stdin.`,
		Example: `  ` + Name + ` assembly.fasta resfinder.tsv amrfinder.tsv > regions.fasta
  ` + Name + ` --flank 10000 -o tsv assembly.fasta.gz 'reports/*.tsv'`,
		Version:       version.Version,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cli.Register(cmd.Flags())
	return cmd
}

// loadOptions merges flags, environment and the optional config file, in
// that order of precedence.
func loadOptions(cmd *cobra.Command, args []string) (cli.Options, error) {
	var opts cli.Options
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return opts, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return opts, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("decode options: %w", err)
	}
	if err := opts.SetPositionals(args); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := ExitOK
	cmd := newCommand(func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		code = runExtract(cmd.Context(), opts, outw, stderr)
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", Name)
		code = ExitUsage
	}

	if err := outw.Flush(); err != nil && !output.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		if code == ExitOK {
			code = ExitIO
		}
	}
	return code
}

// runExtract runs the pipeline for validated options and maps its outcome to
// an exit code.
func runExtract(ctx context.Context, opts cli.Options, stdout, stderr io.Writer) int {
	warn := func(format string, a ...any) { cmdutil.Warnf(stderr, opts.Quiet, format, a...) }

	w, err := output.New(opts.Output, stdout, output.Options{Header: opts.Header(), LineWidth: opts.LineWidth})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	_, err = pipeline.Run(ctx, pipeline.Config{Flank: opts.Flank}, opts.Assembly, opts.Reports, w, warn)
	switch {
	case errors.Is(err, pipeline.ErrNoHits):
		cmdutil.Infof(stderr, opts.Quiet, "no hits found in %s", strings.Join(opts.Reports, ", "))
		return ExitOK
	case err == nil:
		err = w.Close()
	}
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, output.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		_, _ = fmt.Fprintln(stderr, "canceled")
		return ExitCanceled
	case errors.Is(err, report.ErrInputFormat):
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitIO
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
