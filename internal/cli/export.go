package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/mt5journal/export"
)

func newExportCmd(rc *Root) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static HTML report of the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			dir := outDir
			if dir == "" {
				dir = rc.Cfg.Export.OutputDir
			}

			path, err := export.Write(ledger, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "static report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (overrides config)")
	return cmd
}
