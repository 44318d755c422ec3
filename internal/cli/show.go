package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDaysCmd(rc *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "Print the daily overview with chained balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			days, err := ledger.ListDays()
			if err != nil {
				return err
			}
			if len(days) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no days in journal")
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %12s %10s %12s %8s %7s\n",
				"DATE", "START", "PNL", "END", "TRADES", "WIN%")
			for _, d := range days {
				fmt.Fprintf(w, "%-12s %12.2f %+10.2f %12.2f %8d %6.1f%%\n",
					d.Date, d.StartingBalance, d.PnL, d.EndingBalance, d.NumTrades, d.WinRate)
			}
			return nil
		},
	}
}

func newDayCmd(rc *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "day DATE",
		Short: "Print all events for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			events, err := ledger.TradesOn(args[0])
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no events for %s\n", args[0])
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-10s %-10s %-12s %-10s %-6s %10s %10s\n",
				"TIME", "TICKET", "TYPE", "SYMBOL", "SIDE", "SIZE", "PNL")
			for _, e := range events {
				fmt.Fprintf(w, "%-10s %-10d %-12s %-10s %-6s %10.2f %+10.2f\n",
					e.Time, e.Ticket, e.Type, e.Symbol, e.Side, e.Size, e.PnL)
			}
			return nil
		},
	}
}
