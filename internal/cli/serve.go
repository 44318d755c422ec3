package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/mt5journal/server"
)

func newServeCmd(rc *Root) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the journal HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, closeStore, err := rc.OpenLedger()
			if err != nil {
				return err
			}
			defer closeStore()

			readTimeout, err := rc.Cfg.Server.ParseReadTimeout()
			if err != nil {
				return err
			}
			writeTimeout, err := rc.Cfg.Server.ParseWriteTimeout()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(rc.Cfg.Server.Listen, ledger, rc.Log, server.Options{
				ReadTimeout:  readTimeout,
				WriteTimeout: writeTimeout,
			})
			return srv.Run(ctx)
		},
	}
}
