package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unclebandit/storefront/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and seed the catalog",
	Long:  "Creates the products, customers and orders tables in a persistent database and writes the catalog when it is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.Driver == "sqlite" && cfg.Database.DSN == ":memory:" {
			return fmt.Errorf("seeding an in-memory database has no lasting effect; set DB_DRIVER and DB_DSN")
		}

		store, err := db.Open(cmd.Context(), cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer store.Close()

		seeded, err := store.Init(cmd.Context())
		if err != nil {
			return err
		}
		if seeded == 0 {
			logger.Info("catalog already present, nothing seeded")
			return nil
		}
		logger.Info("database seeding completed", "products", seeded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
