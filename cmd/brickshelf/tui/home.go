package tui

import (
	"fmt"
	"strings"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/ruminaider/brickshelf/internal/sections"
)

// RenderHome draws a resolved home view. With showAll the display caps are
// ignored.
func RenderHome(title string, view *commands.HomeView, showAll bool) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	switch view.State {
	case sections.NoSectionsConfigured:
		b.WriteString(HintStyle.Render("No sections configured. Run 'brickshelf home edit' to add some."))
		b.WriteString("\n")
		return b.String()
	case sections.AllSectionsEmpty:
		if len(view.Sets) == 0 {
			b.WriteString(HintStyle.Render("Your shelf is empty. Run 'brickshelf sets add' to add a set."))
		} else {
			b.WriteString(HintStyle.Render("None of your sections have any sets right now."))
		}
		b.WriteString("\n")
		return b.String()
	}

	for i, sec := range view.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		items := sec.Visible()
		if showAll {
			items = sec.Sets
		}

		b.WriteString(SectionTitleStyle.Render(sec.Title))
		b.WriteString(" " + CountStyle.Render(fmt.Sprintf("(%d)", len(sec.Sets))))
		b.WriteString("\n")
		for _, s := range items {
			b.WriteString(ItemStyle.Render(setLabel(s)))
			if d := setDetail(s); d != "" {
				b.WriteString(" " + DetailStyle.Render(d))
			}
			b.WriteString("\n")
		}
		if hidden := len(sec.Sets) - len(items); hidden > 0 {
			more := fmt.Sprintf("  … %d more", hidden)
			if sec.ViewAllFilter != "" {
				more += fmt.Sprintf(" (brickshelf sets list --filter '%s')", sec.ViewAllFilter)
			}
			b.WriteString(HintStyle.Render(more))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func setLabel(s collection.Set) string {
	switch {
	case s.Number != "" && s.Name != "":
		return s.Number + " " + s.Name
	case s.Name != "":
		return s.Name
	default:
		return s.Number
	}
}

func setDetail(s collection.Set) string {
	var parts []string
	if s.PieceCount != nil {
		parts = append(parts, fmt.Sprintf("%d pcs", *s.PieceCount))
	}
	if s.Year != nil {
		parts = append(parts, fmt.Sprintf("%d", *s.Year))
	}
	if t := s.ThemeName(); t != "" {
		parts = append(parts, t)
	}
	return strings.Join(parts, " · ")
}
