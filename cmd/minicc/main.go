package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/raymyers/minicc/pkg/ast"
	"github.com/raymyers/minicc/pkg/config"
	"github.com/raymyers/minicc/pkg/lexer"
	"github.com/raymyers/minicc/pkg/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var version = "0.1.0"

// Debug flags for dumping parser output
var (
	dParse   bool
	dSymbols bool
)

// Session options; they override the config file when set
var (
	configPath  string
	maxArgs     int
	stopOnError bool
	colorMode   string
	verbose     bool
)

// ErrParseFailed is returned when the input has syntax or type errors
var ErrParseFailed = errors.New("parsing failed")

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Normalize CompCert-style single-dash flags to double-dash for pflag compatibility
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists the debug flags that accept single-dash style
var debugFlagNames = []string{"dparse", "dsymbols"}

// normalizeFlags converts single-dash flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = arg
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
	}
	return result
}

// wordSepNormalize lets --max_args stand for --max-args
func wordSepNormalize(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minicc [file]",
		Short: "minicc parses a small C-like language into a typed AST",
		Long: `minicc is the front end of a small C-like language. It reads
declarations, expressions and if statements, resolves every name
against the symbol tables and reports type errors. Use -dparse to
dump the typed AST and -dsymbols to dump the symbol tables.
Pass - as the file to read standard input.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprintf(errOut, "minicc: %v\n", err)
				return err
			}
			return doParse(args[0], cfg, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.Flags().SetNormalizeFunc(wordSepNormalize)

	rootCmd.Flags().BoolVarP(&dParse, "dparse", "", false, "Dump the typed AST after parsing")
	rootCmd.Flags().BoolVarP(&dSymbols, "dsymbols", "", false, "Dump the symbol tables and string pool")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Read options from a YAML file")
	rootCmd.Flags().IntVar(&maxArgs, "max-args", config.DefaultMaxArgs, "Maximum number of arguments in a call")
	rootCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Stop at the first error instead of skipping the statement")
	rootCmd.Flags().StringVar(&colorMode, "color", config.ColorAuto, "Highlight errors: auto, always or never")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report parse statistics")

	return rootCmd
}

// loadConfig reads the config file, if any, and applies explicit flags on
// top of it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-args") {
		cfg.MaxArgs = maxArgs
	}
	if flags.Changed("stop-on-error") {
		cfg.StopOnError = stopOnError
	}
	if flags.Changed("color") {
		cfg.Color = colorMode
	}
	return cfg, cfg.Validate()
}

// readSource reads the named file, or standard input for "-"
func readSource(filename string) ([]byte, error) {
	if filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

// doParse parses the file, reports errors and writes the requested dumps
func doParse(filename string, cfg *config.Config, out, errOut io.Writer) error {
	content, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(errOut, "minicc: error reading %s: %v\n", filename, err)
		return err
	}

	stream := lexer.NewStream(string(content))
	p := parser.New(stream, cfg)
	program := p.ParseProgram()

	if verbose {
		fmt.Fprintf(errOut, "minicc: %s: %d tokens, %d units, %d globals, %d locals, %d strings, frame %d bytes\n",
			filename, stream.Count(), len(program.Units), len(program.Globals),
			len(program.Locals), len(program.Strings), p.Symbols().FrameSize())
	}

	if len(p.Errors()) > 0 {
		color := useColor(cfg.Color, errOut)
		for _, e := range p.Errors() {
			msg := fmt.Sprintf("%s: %s", filename, e)
			if color {
				msg = "\x1b[31m" + msg + "\x1b[0m"
			}
			fmt.Fprintln(errOut, msg)
		}
		return fmt.Errorf("%w with %d errors", ErrParseFailed, len(p.Errors()))
	}

	printer := ast.NewPrinter(out)
	if dParse {
		fmt.Fprintf(out, "; %s xxhash=%016x\n", filename, xxhash.Sum64(content))
		printer.PrintProgram(program)
	}
	if dSymbols {
		printer.PrintSymbols(program)
	}
	return nil
}

// useColor reports whether diagnostics written to w are highlighted
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
