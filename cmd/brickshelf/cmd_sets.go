package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage the sets in your collection",
}

var (
	addInput    commands.AddSetInput
	addNoLookup bool
)

var setsAddCmd = &cobra.Command{
	Use:   "add [set-number]",
	Short: "Add a set",
	Long:  "Add a set to the collection. When a set number is given, missing details are looked up in the catalog.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			addInput.Number = args[0]
		}
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		s, err := commands.AddSet(cmd.Context(), app, addInput, !addNoLookup)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added %s (%s)\n", displayName(s), s.ID)
		return nil
	},
}

var (
	listStatus string
	listFilter string
)

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		sets, err := commands.ListSets(cmd.Context(), app, listStatus)
		if err != nil {
			return err
		}
		if listFilter != "" {
			if sets, err = commands.FilterSets(sets, listFilter); err != nil {
				return err
			}
		}
		if len(sets) == 0 {
			fmt.Println("No sets yet.")
			return nil
		}
		for _, s := range sets {
			fmt.Println(formatSetLine(s))
		}
		fmt.Printf("\n%d sets\n", len(sets))
		return nil
	},
}

var setsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		s, err := app.DB.GetSet(cmd.Context(), app.User, args[0])
		if err != nil {
			return err
		}
		fmt.Println(displayName(s))
		fmt.Printf("  ID:        %s\n", s.ID)
		fmt.Printf("  Status:    %s\n", s.Status.Label())
		if t := s.ThemeName(); t != "" {
			fmt.Printf("  Theme:     %s\n", t)
		}
		if s.PieceCount != nil {
			fmt.Printf("  Pieces:    %d\n", *s.PieceCount)
		}
		if s.Year != nil {
			fmt.Printf("  Year:      %d\n", *s.Year)
		}
		if d := s.DateReceived.ISO(); d != "" {
			fmt.Printf("  Received:  %s\n", d)
		}
		if s.ImageURL != "" {
			fmt.Printf("  Image:     %s\n", s.ImageURL)
		}
		return nil
	},
}

var setsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a set's status",
	Long:  "Change a set's status. Valid statuses: " + statusList() + ".",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := commands.SetStatus(cmd.Context(), app, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("✓ %s is now %s\n", args[0], args[1])
		return nil
	},
}

var removeYes bool

var setsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		s, err := app.DB.GetSet(cmd.Context(), app.User, args[0])
		if err != nil {
			return err
		}

		if !removeYes {
			if !term.IsTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("refusing to remove without confirmation; pass --yes")
			}
			confirmed := false
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Remove %s?", displayName(s))).
						Value(&confirmed),
				),
			).Run()
			if err != nil && !errors.Is(err, huh.ErrUserAborted) {
				return err
			}
			if !confirmed {
				fmt.Println("Kept.")
				return nil
			}
		}

		if err := commands.RemoveSet(cmd.Context(), app, s.ID); err != nil {
			return err
		}
		fmt.Printf("✓ Removed %s\n", displayName(s))
		return nil
	},
}

var setsEnrichCmd = &cobra.Command{
	Use:   "enrich [id...]",
	Short: "Fill missing details from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		fmt.Println("Looking up sets in the catalog...")
		res, err := commands.EnrichSets(cmd.Context(), app, args)
		if err != nil {
			return err
		}
		for _, s := range res.Updated {
			fmt.Printf("  ✓ %s\n", displayName(s))
		}
		for id, err := range res.Failed {
			fmt.Printf("  ✗ %s: %v\n", id, err)
		}
		fmt.Printf("\n%d updated, %d already complete, %d failed\n", len(res.Updated), len(res.Skipped), len(res.Failed))
		return nil
	},
}

var setsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import sets from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		n, err := commands.ImportSets(cmd.Context(), app, args[0])
		if err != nil {
			return fmt.Errorf("imported %d sets before failing: %w", n, err)
		}
		fmt.Printf("✓ Imported %d sets\n", n)
		return nil
	},
}

func displayName(s collection.Set) string {
	switch {
	case s.Name != "" && s.Number != "":
		return fmt.Sprintf("%s %s", s.Number, s.Name)
	case s.Name != "":
		return s.Name
	default:
		return s.Number
	}
}

func formatSetLine(s collection.Set) string {
	var details []string
	if t := s.ThemeName(); t != "" {
		details = append(details, t)
	}
	if s.PieceCount != nil {
		details = append(details, fmt.Sprintf("%d pcs", *s.PieceCount))
	}
	if s.Year != nil {
		details = append(details, fmt.Sprintf("%d", *s.Year))
	}
	if d := s.DateReceived.ISO(); d != "" {
		details = append(details, "received "+d)
	}
	line := fmt.Sprintf("%-36s  %-12s %s", s.ID, s.Status.Label(), displayName(s))
	if len(details) > 0 {
		line += " (" + strings.Join(details, ", ") + ")"
	}
	return line
}

func statusList() string {
	names := make([]string, len(collection.AllStatuses))
	for i, st := range collection.AllStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

func init() {
	setsAddCmd.Flags().StringVar(&addInput.Name, "name", "", "Set name")
	setsAddCmd.Flags().StringVar(&addInput.Theme, "theme", "", "Theme, e.g. \"Star Wars\"")
	setsAddCmd.Flags().IntVar(&addInput.PieceCount, "pieces", 0, "Piece count")
	setsAddCmd.Flags().IntVar(&addInput.Year, "year", 0, "Release year")
	setsAddCmd.Flags().StringVar(&addInput.Status, "status", "", "Status: "+statusList())
	setsAddCmd.Flags().StringVar(&addInput.DateReceived, "received", "", "Date received (YYYY-MM-DD)")
	setsAddCmd.Flags().BoolVar(&addNoLookup, "no-lookup", false, "Skip the catalog lookup")

	setsListCmd.Flags().StringVar(&listStatus, "status", "", "Only show sets with this status")
	setsListCmd.Flags().StringVar(&listFilter, "filter", "", "View-all filter from a home section, e.g. sort=pieces_desc")
	setsRemoveCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Do not ask for confirmation")

	setsCmd.AddCommand(setsAddCmd)
	setsCmd.AddCommand(setsListCmd)
	setsCmd.AddCommand(setsShowCmd)
	setsCmd.AddCommand(setsStatusCmd)
	setsCmd.AddCommand(setsRemoveCmd)
	setsCmd.AddCommand(setsEnrichCmd)
	setsCmd.AddCommand(setsImportCmd)
}
