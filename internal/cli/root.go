package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/mt5journal/config"
	"github.com/rustyeddy/mt5journal/internal/logger"
	"github.com/rustyeddy/mt5journal/journal"
)

// Root carries the resolved configuration and logger into subcommands.
type Root struct {
	ConfigPath string
	DBPath     string
	LogLevel   string

	Cfg *config.Config
	Log *zap.Logger
}

// OpenLedger opens the journal database and wraps it in a ledger. The
// returned closer must be deferred by the caller.
func (rc *Root) OpenLedger() (*journal.Ledger, func() error, error) {
	store, err := journal.Open(rc.Cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal db %s: %w", rc.Cfg.Database.Path, err)
	}
	return journal.NewLedger(store, rc.Cfg.Ledger.BaselineEquity), store.Close, nil
}

func NewRootCmd() *cobra.Command {
	rc := &Root{}

	cmd := &cobra.Command{
		Use:           "mt5journal",
		Short:         "mt5journal - MT5 PnL journal: ingest, aggregate, report",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite journal database (overrides config)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// .env first so config env overrides can come from it.
		_ = godotenv.Load()

		if rc.ConfigPath != "" {
			cfg, err := config.LoadFromFile(rc.ConfigPath)
			if err != nil {
				return err
			}
			rc.Cfg = cfg
		} else {
			rc.Cfg = config.Default()
		}

		if rc.DBPath != "" {
			rc.Cfg.Database.Path = rc.DBPath
		}
		if rc.LogLevel != "" {
			rc.Cfg.LogLevel = rc.LogLevel
		}

		log, err := logger.New(rc.Cfg.LogLevel)
		if err != nil {
			return err
		}
		rc.Log = log
		return nil
	}

	cmd.AddCommand(
		newServeCmd(rc),
		newExportCmd(rc),
		newAdjustCmd(rc),
		newImportCmd(rc),
		newDaysCmd(rc),
		newDayCmd(rc),
		newRebuildCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mt5journal (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
