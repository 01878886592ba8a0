package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunobiangulo/tgschema/export"
)

func newDumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump [source]",
		Short: "Print the extracted schema",
		Example: `  tgschema dump                           # Live page, text dump
  tgschema dump --format json api.html    # Local copy, JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args, os.Stderr, false)
			if err != nil {
				return err
			}
			s, err := extract(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return export.Text(out, s)
			case "json":
				return export.JSON(out, s)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	return cmd
}
