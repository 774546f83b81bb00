package main

import (
	"errors"
	"fmt"

	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/ruminaider/brickshelf/internal/store"
	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Manage the public read-only view of your collection",
}

var shareEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn on the public view",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		info, err := commands.EnableShare(cmd.Context(), app)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Public view on: %s\n", info.URL)
		return nil
	},
}

var shareDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn off the public view",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := commands.DisableShare(cmd.Context(), app); err != nil {
			return err
		}
		fmt.Println("✓ Public view off")
		return nil
	},
}

var shareStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the public view is on",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		info, err := commands.ShareStatus(cmd.Context(), app)
		if err != nil {
			return err
		}
		if !info.Enabled {
			fmt.Println("Public view: off")
			return nil
		}
		fmt.Printf("Public view: on\n  %s\n", info.URL)
		return nil
	},
}

var shareViewCmd = &cobra.Command{
	Use:   "view <token>",
	Short: "Show the public view behind a share token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		view, err := commands.SharedHome(cmd.Context(), app, args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no shared collection for that token")
		}
		if err != nil {
			return err
		}
		return printHome("Shared shelf", view)
	},
}

func init() {
	shareViewCmd.Flags().BoolVar(&homeAll, "all", false, "Show every set in each section")
	shareViewCmd.Flags().BoolVar(&homeJSON, "json", false, "Print JSON")

	shareCmd.AddCommand(shareEnableCmd)
	shareCmd.AddCommand(shareDisableCmd)
	shareCmd.AddCommand(shareStatusCmd)
	shareCmd.AddCommand(shareViewCmd)
}
