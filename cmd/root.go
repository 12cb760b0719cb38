package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notenext/app"
	"notenext/config"
	"notenext/db"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "notenext",
	Short: "Note-taking service with parental oversight",
	Long: `NoteNext lets children keep notes and folders while their parents
follow along read-only.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
}

// openApp loads configuration, connects and migrates the store. The caller
// closes the returned store.
func openApp(ctx context.Context) (*app.App, config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, config.Config{}, err
	}
	store, err := db.Open(ctx, cfg.DBDriver, cfg.DSN)
	if err != nil {
		return nil, config.Config{}, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, config.Config{}, err
	}
	return app.New(store, cfg), cfg, nil
}
