package cmd

import (
	"fmt"
	"os"

	"movie_catalog/config"
	"movie_catalog/database"
	"movie_catalog/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var envFile string

// rootCmd represents the base command; without a subcommand it serves the API
var rootCmd = &cobra.Command{
	Use:   "movie-catalog",
	Short: "REST API for a catalog of movies, characters and franchises",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.EnvFile = envFile
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// runtime is what every command needs: settings, a logger and an open database.
type runtime struct {
	settings *config.Settings
	log      *zap.Logger
	db       *gorm.DB
	close    func()
}

func bootstrap() (*runtime, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(settings.IsDevelopment(), settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	db, cleanup, err := database.ConnectDB(settings.Database, log, settings.LogLevel == "debug")
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	return &runtime{
		settings: settings,
		log:      log,
		db:       db,
		close: func() {
			cleanup()
			_ = log.Sync()
		},
	}, nil
}
