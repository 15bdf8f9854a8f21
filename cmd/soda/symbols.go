package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soda-lang/soda"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols source-file",
	Short: "Parse a single file and print the names declared in its top-level scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need exactly one argument, <source-file>")
		}
		tu, err := soda.ParseFile(args[0])
		if err != nil {
			return err
		}
		names := tu.Symbols.Names()
		if len(names) == 0 {
			fmt.Println("(no top-level symbols)")
			return nil
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
