package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every page to a static directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}
		res, err := app.Build(cmd.Context(), outDir)
		if err != nil {
			return err
		}
		for _, p := range res.Pages {
			fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", p)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d files written to %s\n", res.Files, outDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
}
