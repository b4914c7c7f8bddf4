package cli

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/unclebandit/storefront/internal/config"
	"github.com/unclebandit/storefront/internal/logging"
)

var (
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "shop",
	Short:         "Single-page storefront demo",
	Long:          "Serves a product catalog page with JSON endpoints for listing products and placing orders",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load()

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger = logging.New(logging.Options{Level: cfg.LogLevel, Writer: cmd.ErrOrStderr()})

		if envErr != nil {
			if errors.Is(envErr, fs.ErrNotExist) {
				logger.Debug("no .env file found, relying on OS environment variables")
			} else {
				logger.Warn("failed to load .env", "error", envErr)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a .yml/.yaml/.toml config file")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
