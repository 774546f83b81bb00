package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/brickshelf/internal/config"
	"github.com/ruminaider/brickshelf/internal/paths"
	"github.com/spf13/cobra"
)

var initBackend string
var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.brickshelf/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.ConfigFile()
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		newCfg := config.Default()
		if userFlag != "" {
			newCfg.User = userFlag
		}
		if initBackend != "" {
			newCfg.Preferences = initBackend
		}

		if term.IsTerminal(os.Stdin.Fd()) && userFlag == "" {
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Who owns this collection?").
						Value(&newCfg.User),
					huh.NewSelect[string]().
						Title("Where should home preferences live?").
						Options(
							huh.NewOption("In the collection database", config.BackendSQLite),
							huh.NewOption("In YAML files next to the config", config.BackendFile),
						).
						Value(&newCfg.Preferences),
				),
			).Run()
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
		}

		data, err := config.Marshal(newCfg)
		if err != nil {
			return err
		}
		// Round-trip through Parse so invalid choices fail before we write.
		if _, err := config.Parse(data); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("✓ Wrote %s\n", path)
		fmt.Println("Run 'brickshelf sets add' to add your first set.")
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initBackend, "preferences", "", "Preference backend: sqlite or file")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")
}
