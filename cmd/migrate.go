package cmd

import (
	"movie_catalog/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		if err := database.Migrate(rt.db); err != nil {
			return err
		}
		rt.log.Info("database migrated")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fixture catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		if err := database.Migrate(rt.db); err != nil {
			return err
		}
		return database.SeedData(rt.db, rt.log)
	},
}
