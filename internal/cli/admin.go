package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/mt5journal/journal"
)

func newAdjustCmd(rc *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust DATE AMOUNT",
		Short: "Apply a manual pnl adjustment to one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("amount must be numeric: %q", args[1])
			}

			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			if _, err := ledger.Ingest(journal.Adjustment(args[0], amount)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "adjusted %s by %+.2f\n", args[0], amount)
			return nil
		},
	}
}

func newImportCmd(rc *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replay a JSON array of events (use - for stdin)",
		Long: `Replay exported terminal history through the normal ingest path.
Deals carry their ticket, so re-importing overlapping history never
double-counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read events: %w", err)
			}

			var events []journal.Event
			if err := json.Unmarshal(data, &events); err != nil {
				return fmt.Errorf("parse events: %w", err)
			}

			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			var inserted, skipped int
			for i, e := range events {
				res, err := ledger.Ingest(e)
				if err != nil {
					return fmt.Errorf("event %d: %w", i, err)
				}
				if res == journal.Inserted {
					inserted++
				} else {
					skipped++
				}
			}

			rc.Log.Info("import finished",
				zap.Int("inserted", inserted),
				zap.Int("skipped", skipped),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d events (%d duplicates skipped)\n", inserted, skipped)
			return nil
		},
	}
}

func newRebuildCmd(rc *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Recompute every day aggregate from the event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := ledger.RebuildDays(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "day aggregates rebuilt")
			return nil
		},
	}
}
