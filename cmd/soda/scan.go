package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soda-lang/soda"
	"github.com/soda-lang/soda/internal/ast"
)

func projectFromDirectory(partial bool) (soda.Project, error) {
	cfg, err := loadConfig()
	if err == nil {
		log.WithField("importpaths", cfg.ImportPaths).Debug("loaded soda.yaml")
	}
	return soda.Load(soda.Options{PartialResults: partial, StrictBOM: cfg.StrictBOM}, os.DirFS(directory))
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the directory tree and report which .soda files were discovered, and any parse errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			_ = cmd.Help()
			return fmt.Errorf("too many arguments")
		}
		proj, err := projectFromDirectory(true)
		if pe, ok := err.(soda.ParseErrors); ok {
			fmt.Println("Errors:")
			for _, e := range pe.Errors {
				fmt.Println("  " + e.Error())
			}
			fmt.Println()
		} else if err != nil {
			return err
		}
		if len(proj.Files) == 0 {
			fmt.Println("No .soda files found in", directory)
			return nil
		}
		for _, f := range proj.Files {
			fmt.Printf("%s: %d top-level statement(s)\n", f.Path, len(topLevelStmts(f.TU)))
		}
		return nil
	},
}

func topLevelStmts(tu *ast.TU) []ast.Stmt {
	return tu.Stmts
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
