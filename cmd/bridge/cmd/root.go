package cmd

import (
	"github.com/gjermundgaraba/libbridge/cmd/bridge/config"
	"github.com/gjermundgaraba/libbridge/cmd/bridge/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	cfg        *config.Config
	logLevel   string
	logDir     string

	logger    *zap.Logger
	logWriter *logging.LogWriter
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bridge",
		Short:         "Find, compare and execute cross-chain token transfer routes",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			logger, logWriter, err = logging.NewLogger(logLevel, logDir)
			if err != nil {
				return errors.Wrap(err, "failed to set up logging")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", logging.DefaultLogDir, "directory for log files")

	rootCmd.AddCommand(
		routesCmd(),
		transferCmd(),
		balanceCmd(),
		generateWalletCmd(),
	)

	return rootCmd
}
