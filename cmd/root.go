// Package cmd wires up the CLI flags and dispatches to the cipher core.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"caesar/config"
	"caesar/internal/core"
	cerrors "caesar/internal/errors"
	"caesar/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X caesar/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// stdio is the path that selects a standard stream explicitly.
const stdio = "-"

// Execute parses args and runs the selected command.  Diagnostics and
// usage go to stderr.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stderr)
}

func execute(ctx context.Context, args []string, stderr io.Writer) error {
	cfg := config.Default()
	if err := config.LoadFromEnv(cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("caesar", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parse errors are returned, not printed
	fs.Usage = func() {}

	// ── cipher ───────────────────────────────────────────────────
	fs.IntVarP(&cfg.Shift, "shift", "s", cfg.Shift,
		fmt.Sprintf("Shift value %d..%d used when encoding (random if omitted)", config.MinShift, config.MaxShift))
	fs.StringVarP(&cfg.ReferencePath, "reference", "r", cfg.ReferencePath,
		"Reference letter frequencies (.json, .toml or .kdl) for decode/frequency")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random shift (0 = unpredictable)")

	// ── input ────────────────────────────────────────────────────
	fs.Int64Var(&cfg.MaxInputBytes, "max-input", cfg.MaxInputBytes, "Maximum input size in bytes (0 = unlimited)")

	// ── output ───────────────────────────────────────────────────
	var moreVerbose int
	fs.CountVarP(&moreVerbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Only report errors")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return &cerrors.ConfigError{
			Field:   "flags",
			Message: err.Error(),
			Hint:    "see 'caesar --help'",
			Err:     err,
		}
	}

	if showHelp || len(args) == 0 {
		printUsage(stderr, fs)
		return nil
	}
	if showVersion {
		fmt.Printf("caesar %s\n", version)
		return nil
	}

	cfg.Verbose += moreVerbose

	// ── positional arguments ─────────────────────────────────────
	parsePositional(cfg, fs.Args())

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbosity())
	logger.SetOutput(stderr)
	if len(cfg.ExtraArgs) > 0 {
		logger.Warn("extra arguments ignored: %s", strings.Join(cfg.ExtraArgs, " "))
	}

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional reads COMMAND [input-file [output-file]].  "-" selects
// the standard stream; anything past the output file is kept so the
// caller can warn about it.
func parsePositional(cfg *config.Config, remaining []string) {
	if len(remaining) == 0 {
		return
	}
	cfg.Command = config.Command(remaining[0])

	if len(remaining) > 1 && remaining[1] != stdio {
		cfg.InputPath = remaining[1]
	}
	if len(remaining) > 2 && remaining[2] != stdio {
		cfg.OutputPath = remaining[2]
	}
	if len(remaining) > 3 {
		cfg.ExtraArgs = remaining[3:]
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Caesar – shift cipher encoder/decoder v%s

If input-file is omitted (or "-"), input is read from stdin.
If output-file is omitted (or "-"), output is written to stdout.

Usage:
  caesar [options] COMMAND [input-file [output-file]]

Commands:
  encode      Shift every letter by --shift (random if omitted)
  decode      Find the most likely shift by letter frequency and undo it
  frequency   Print the letter frequencies of the decoded text as JSON

Options:
%s
Environment:
  CAESAR_SHIFT, CAESAR_REFERENCE, CAESAR_SEED, CAESAR_MAX_INPUT,
  CAESAR_VERBOSE, CAESAR_QUIET                 Defaults for the options above

Examples:
  echo "Hello, World!" | caesar -s 5 encode   Prints "Mjqqt, Btwqi!"
  caesar decode secret.txt plain.txt          Decode a file
  caesar frequency book.txt > english.json    Build a reference table
  caesar -r english.json decode secret.txt    Decode with a custom reference
`, version, fs.FlagUsages())
}
