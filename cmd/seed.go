package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"notenext/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the demo fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Store.Close()

		fx, err := seed.Demo()
		if err != nil {
			return err
		}
		if _, err := seed.Load(cmd.Context(), a, fx); err != nil {
			return err
		}
		log.Printf("Demo accounts use password %q", fx.Password)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every account, folder and note",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Store.Close()

		if err := a.Store.Reset(cmd.Context()); err != nil {
			return err
		}
		log.Println("All data deleted")
		return nil
	},
}
