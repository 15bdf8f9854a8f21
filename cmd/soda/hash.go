package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print a short content hash over every .soda file under --directory, suitable as a build cache key",
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := projectFromDirectory(false)
		if err != nil {
			return err
		}
		fmt.Println(proj.ContentHash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
