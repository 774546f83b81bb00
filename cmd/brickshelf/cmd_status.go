package main

import (
	"fmt"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/ruminaider/brickshelf/internal/paths"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a collection summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		state := commands.DetectShelfState(cmd.Context(), app, paths.ConfigFile())

		if !state.ConfigExists {
			fmt.Println("No config file yet; using defaults. Run 'brickshelf init' to create one.")
			fmt.Println()
		}

		fmt.Printf("%s's collection: %d sets across %d themes\n", app.User, state.Total, state.Themes)
		for _, st := range collection.AllStatuses {
			if n := state.ByStatus[st]; n > 0 {
				fmt.Printf("  %-12s %d\n", st.Label(), n)
			}
		}
		fmt.Println()

		if state.DefaultHome {
			fmt.Println("Home: default sections")
		} else {
			fmt.Println("Home: customised sections")
		}
		if state.Shared {
			fmt.Println("Public view: on")
		} else {
			fmt.Println("Public view: off")
		}
		return nil
	},
}
