package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/parser"
	"github.com/soda-lang/soda/internal/printer"
	"github.com/soda-lang/soda/internal/sema"
)

// Exit codes, per the external-interfaces contract: 0 success, 1 syntax
// error, 2 semantic error, any other non-zero value an I/O failure.
const (
	exitOK            = 0
	exitSyntaxError   = 1
	exitSemanticError = 2
	exitIOFailure     = 3
	exitUsageError    = 64 // sysexits.h EX_USAGE, matching cobra's own convention
)

var (
	directory string
	verbose   bool
	dumpMode  string

	log = logrus.NewEntry(logrus.StandardLogger())
)

var rootCmd = &cobra.Command{
	Use:          "soda [source-file]",
	Short:        "soda",
	Version:      "0.1.0",
	SilenceUsage: true,
	Long:         `Front-end for the Soda language: tokenize, parse, and resolve scopes and types, then optionally print the decorated tree. Pass "-" to read source from standard input.`,
	Args:         cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.Logger.SetLevel(logrus.DebugLevel)
		}
		runID, err := uuid.NewV4()
		if err == nil {
			log = log.WithField("run", runID.String())
		}
	},
	RunE: runRoot,
}

var runResult int

func runRoot(cmd *cobra.Command, args []string) error {
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}

	log.WithField("file", file).Debug("reading source")
	data, err := readSource(file)
	if err != nil {
		log.WithError(err).Error("could not read source")
		fmt.Fprintln(os.Stderr, err)
		runResult = exitIOFailure
		return nil
	}

	cfg, err := loadConfig()
	if err == nil {
		log.WithField("strictbom", cfg.StrictBOM).Debug("loaded soda.yaml")
	}

	log.Debug("tokenizing and parsing")
	var tu *ast.TU
	if cfg.StrictBOM {
		tu, err = parser.ParseStrictBOM(file, data)
	} else {
		tu, err = parser.Parse(file, data)
	}
	if err != nil {
		log.WithError(err).Error("syntax error")
		fmt.Fprintln(os.Stderr, err)
		runResult = exitSyntaxError
		return nil
	}

	log.Debug("running scope pass")
	if err := sema.RunScopePass(file, tu); err != nil {
		log.WithError(err).Error("semantic error")
		fmt.Fprintln(os.Stderr, err)
		runResult = exitSemanticError
		return nil
	}

	log.Debug("running type-reference pass")
	if err := sema.RunTypeRefPass(file, tu); err != nil {
		log.WithError(err).Error("semantic error")
		fmt.Fprintln(os.Stderr, err)
		runResult = exitSemanticError
		return nil
	}

	log.Info("parsed successfully")
	dumpTree(os.Stdout, tu)
	runResult = exitOK
	return nil
}

func dumpTree(w io.Writer, tu *ast.TU) {
	switch dumpMode {
	case "repr":
		printer.DumpRepr(w, tu)
	default:
		printer.Dump(w, tu)
	}
}

func readSource(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

// Execute runs the CLI and returns the process exit code, per the
// external-interfaces contract's exit-code table.
func Execute() int {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to the directory tree scanned by 'scan', 'symbols', and 'hash'")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug-level detail to stderr")
	rootCmd.PersistentFlags().StringVar(&dumpMode, "dump", "sexpr", "AST dump format: sexpr or repr")
	rootCmd.Flags().BoolP("version", "V", false, "print the version and exit")

	if err := rootCmd.Execute(); err != nil {
		return exitUsageError
	}
	return runResult
}
