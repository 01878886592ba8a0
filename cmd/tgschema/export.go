package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brunobiangulo/tgschema/export"
	"github.com/brunobiangulo/tgschema/schema"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [source]",
		Short: "Write the extracted schema to a file",
		Long: `Write the extracted schema to a file. The format follows the extension of
--out: .xlsx writes a workbook with Types, Methods and Changes sheets, .json
writes indented JSON and anything else writes the text dump.`,
		Example: `  tgschema export --out botapi.xlsx
  tgschema export --out botapi.json ./api.html`,
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

			var write func(io.Writer, *schema.Schema) error
			switch strings.ToLower(filepath.Ext(out)) {
			case ".xlsx":
				write = export.XLSX
			case ".json":
				write = export.JSON
			default:
				write = export.Text
			}
			if err := writeFile(out, func(w io.Writer) error { return write(w, s) }); err != nil {
				return err
			}

			slog.Info("export: written", "path", out, "types", len(s.Types), "methods", len(s.Methods))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "schema.xlsx", "Output file (.xlsx, .json or text)")
	return cmd
}

// writeFile writes path through a temporary file in the same directory and
// renames it into place, so a failed write leaves any previous file intact.
func writeFile(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}
