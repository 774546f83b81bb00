package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/brickshelf/cmd/brickshelf/tui"
	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	homeAll  bool
	homeJSON bool
	homeYAML bool
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show your home sections",
	Long:  "Show the home view: your configured sections resolved against the collection.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		view, err := commands.Home(cmd.Context(), app)
		if err != nil {
			return err
		}
		return printHome(fmt.Sprintf("%s's shelf", app.User), view)
	},
}

func printHome(title string, view *commands.HomeView) error {
	if homeJSON {
		out := struct {
			State    string              `json:"state"`
			Sections []sections.Resolved `json:"sections"`
		}{view.State.String(), view.Sections}
		if out.Sections == nil {
			out.Sections = []sections.Resolved{}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Print(tui.RenderHome(title, view, homeAll))
	return nil
}

var homeEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Customize home sections interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return errors.New("home edit needs a terminal; use 'brickshelf home add|remove|move|reset' instead")
		}
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		session, err := commands.OpenEditor(cmd.Context(), app)
		if err != nil {
			return err
		}
		sets, err := app.DB.ListSets(cmd.Context(), app.User)
		if err != nil {
			return err
		}

		model := tui.NewEditorModel(cmd.Context(), session, collection.Themes(sets), app.Home.Saver(app.User))
		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		result := finalModel.(tui.EditorModel)
		if result.Saved() {
			fmt.Println("✓ Home sections saved")
		} else {
			fmt.Println("No changes saved.")
		}
		return nil
	},
}

var homeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a section",
}

var homeAddSmartCmd = &cobra.Command{
	Use:   "smart <type>",
	Short: "Add a smart section (see 'brickshelf home types')",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		added, err := commands.AddSmartSection(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}
		reportAdded(added, args[0])
		return nil
	},
}

var homeAddThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Add a theme section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		added, err := commands.AddThemeSection(cmd.Context(), app, args[0])
		if err != nil {
			return err
		}
		reportAdded(added, args[0])
		return nil
	},
}

func reportAdded(added bool, name string) {
	if added {
		fmt.Printf("✓ Added %s\n", name)
	} else {
		fmt.Printf("%s is already on your home view\n", name)
	}
}

var homeRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the section at a position (1-based, see 'brickshelf home config')",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := commands.RemoveSection(cmd.Context(), app, pos); err != nil {
			return err
		}
		fmt.Printf("✓ Removed section %s\n", args[0])
		return nil
	},
}

var homeMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a section to a new position (1-based)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		to, err := parsePosition(args[1])
		if err != nil {
			return err
		}
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := commands.MoveSection(cmd.Context(), app, from, to); err != nil {
			return err
		}
		fmt.Printf("✓ Moved section %s to %s\n", args[0], args[1])
		return nil
	},
}

var homeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := commands.ResetSections(cmd.Context(), app); err != nil {
			return err
		}
		fmt.Println("✓ Home sections reset to defaults")
		return nil
	},
}

var homeConfigCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"show-config"},
	Short:   "Print the saved section configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		configs, err := app.Home.Get(cmd.Context(), app.User)
		if err != nil {
			return err
		}
		if homeJSON {
			data, err := json.MarshalIndent(sections.List(configs), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		if homeYAML {
			data, err := yaml.Marshal(sections.List(configs))
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		}
		if len(configs) == 0 {
			fmt.Println("No sections configured.")
			return nil
		}
		for i, c := range configs {
			fmt.Printf("%2d. %s\n", i+1, c.Key())
		}
		if sections.IsDefaultConfig(configs) {
			fmt.Println("\n(default sections)")
		}
		return nil
	},
}

var homeTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the smart section types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range sections.AllSmartTypes {
			def, _ := sections.Lookup(t)
			fmt.Printf("  %-16s %-20s %s\n", t, def.Title, def.Description)
		}
	},
}

// parsePosition turns a 1-based position into an index.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: expected a number from 1", s)
	}
	return n - 1, nil
}

func init() {
	homeCmd.PersistentFlags().BoolVar(&homeJSON, "json", false, "Print JSON")
	homeCmd.Flags().BoolVar(&homeAll, "all", false, "Show every set in each section")

	homeConfigCmd.Flags().BoolVar(&homeYAML, "yaml", false, "Print YAML")

	homeAddCmd.AddCommand(homeAddSmartCmd)
	homeAddCmd.AddCommand(homeAddThemeCmd)

	homeCmd.AddCommand(homeEditCmd)
	homeCmd.AddCommand(homeAddCmd)
	homeCmd.AddCommand(homeRemoveCmd)
	homeCmd.AddCommand(homeMoveCmd)
	homeCmd.AddCommand(homeResetCmd)
	homeCmd.AddCommand(homeConfigCmd)
	homeCmd.AddCommand(homeTypesCmd)
}
