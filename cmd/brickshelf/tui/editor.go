package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ruminaider/brickshelf/internal/editor"
	"github.com/ruminaider/brickshelf/internal/sections"

	tea "github.com/charmbracelet/bubbletea"
)

// saveResultMsg carries the outcome of an async save.
type saveResultMsg struct{ err error }

// EditorModel is the interactive home-section editor. It drives an
// editor.Session; all list changes go through the session so the model
// only tracks cursors and transient UI state. The session is only touched
// from Update and View; a save runs in a command on a snapshot of the draft
// and the session is committed once the result comes back.
type EditorModel struct {
	ctx     context.Context
	session *editor.Session
	save    editor.SaveFunc
	themes  []string

	cursor     int
	grabbed    bool
	pickCursor int
	filter     textinput.Model

	saving bool
	err    error
	width  int

	// Done is set once the session is closed, saved or cancelled.
	Done bool
}

// NewEditorModel wraps an open session. themes is every theme present in
// the collection; save persists the final list.
func NewEditorModel(ctx context.Context, s *editor.Session, themes []string, save editor.SaveFunc) EditorModel {
	ti := textinput.New()
	ti.Placeholder = "filter themes"
	ti.CharLimit = 64
	ti.Width = 30
	return EditorModel{
		ctx:     ctx,
		session: s,
		save:    save,
		themes:  themes,
		filter:  ti,
	}
}

// Saved reports whether the editor closed through a successful save.
func (m EditorModel) Saved() bool { return m.session.Saved() }

// Err returns the last save error, if any.
func (m EditorModel) Err() error { return m.err }

// Init satisfies tea.Model.
func (m EditorModel) Init() tea.Cmd { return nil }

// Update satisfies tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case saveResultMsg:
		m.saving = false
		if msg.err == nil {
			msg.err = m.session.Commit()
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.Done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch m.session.Mode() {
		case editor.ModeList:
			return m.updateList(msg)
		case editor.ModeAddSmart:
			return m.updateAddSmart(msg)
		case editor.ModeAddTheme:
			return m.updateAddTheme(msg)
		}
	}
	return m, nil
}

func (m EditorModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.session.Len()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			if m.grabbed {
				m.move(-1)
			} else {
				m.cursor--
			}
		}
	case "down", "j":
		if m.cursor < n-1 {
			if m.grabbed {
				m.move(1)
			} else {
				m.cursor++
			}
		}
	case "K", "shift+up":
		if m.cursor > 0 {
			m.move(-1)
		}
	case "J", "shift+down":
		if m.cursor < n-1 {
			m.move(1)
		}
	case " ", "enter":
		if n > 0 {
			m.grabbed = !m.grabbed
		}
	case "d", "x", "delete":
		if n > 0 && m.session.Remove(m.cursor) == nil {
			m.grabbed = false
			m.clampCursor()
		}
	case "a":
		if len(m.session.AvailableSmartTypes()) > 0 && m.session.BeginAddSmart() == nil {
			m.grabbed = false
			m.pickCursor = 0
		}
	case "t":
		if len(m.session.AvailableThemes(m.themes)) > 0 && m.session.BeginAddTheme() == nil {
			m.grabbed = false
			m.pickCursor = 0
			m.filter.SetValue("")
			m.filter.Focus()
		}
	case "r":
		if m.session.ShowReset() && m.session.Reset() == nil {
			m.grabbed = false
			m.clampCursor()
		}
	case "ctrl+s":
		m.saving = true
		m.err = nil
		draft, save, ctx := m.session.Draft(), m.save, m.ctx
		return m, func() tea.Msg {
			return saveResultMsg{err: save(ctx, draft)}
		}
	case "esc", "q", "ctrl+c":
		m.session.Cancel()
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *EditorModel) move(delta int) {
	if m.session.Reorder(m.cursor, m.cursor+delta) == nil {
		m.cursor += delta
	}
}

func (m *EditorModel) clampCursor() {
	if n := m.session.Len(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m EditorModel) updateAddSmart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	types := m.session.AvailableSmartTypes()
	switch msg.String() {
	case "up", "k":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
	case "down", "j":
		if m.pickCursor < len(types)-1 {
			m.pickCursor++
		}
	case "enter":
		if m.pickCursor < len(types) {
			if _, err := m.session.AddSmart(types[m.pickCursor]); err == nil {
				m.cursor = m.session.Len() - 1
			}
		}
	case "esc":
		_ = m.session.Back()
	case "ctrl+c":
		m.session.Cancel()
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m EditorModel) updateAddTheme(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	matches := m.matchingThemes()
	switch msg.String() {
	case "up":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		return m, nil
	case "down":
		if m.pickCursor < len(matches)-1 {
			m.pickCursor++
		}
		return m, nil
	case "enter":
		if m.pickCursor < len(matches) {
			if _, err := m.session.AddTheme(matches[m.pickCursor]); err == nil {
				m.filter.Blur()
				m.cursor = m.session.Len() - 1
			}
		}
		return m, nil
	case "esc":
		m.filter.Blur()
		_ = m.session.Back()
		return m, nil
	case "ctrl+c":
		m.session.Cancel()
		m.Done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.pickCursor = 0
	return m, cmd
}

// matchingThemes returns the available themes containing the filter text.
func (m EditorModel) matchingThemes() []string {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var out []string
	for _, t := range m.session.AvailableThemes(m.themes) {
		if q == "" || strings.Contains(strings.ToLower(t), q) {
			out = append(out, t)
		}
	}
	return out
}

// View satisfies tea.Model.
func (m EditorModel) View() string {
	if m.Done {
		return ""
	}
	var body string
	switch m.session.Mode() {
	case editor.ModeAddSmart:
		body = m.viewAddSmart()
	case editor.ModeAddTheme:
		body = m.viewAddTheme()
	default:
		body = m.viewList()
	}
	if m.width > 0 {
		return BoxStyle.Width(min(m.width-2, 72)).Render(body)
	}
	return body
}

func (m EditorModel) viewList() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Customize Home"))
	b.WriteString("\n\n")

	draft := m.session.Draft()
	if len(draft) == 0 {
		b.WriteString(HintStyle.Render("No sections configured. Press a to add one."))
		b.WriteString("\n")
	}
	for i, c := range draft {
		line := fmt.Sprintf("%d. %s %s", i+1, sectionLabel(c), TagStyle.Render(sectionTag(c)))
		switch {
		case i == m.cursor && m.grabbed:
			b.WriteString(GrabbedStyle.Render("≡ " + line))
		case i == m.cursor:
			b.WriteString(CursorStyle.Render("> " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\n" + HintStyle.Render("Saving..."))
	}
	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render("Save failed: "+m.err.Error()))
	}

	hints := []string{"↑↓ move", "space grab", "d remove", "a add section", "t add theme"}
	if m.session.ShowReset() {
		hints = append(hints, "r reset")
	}
	hints = append(hints, "ctrl+s save", "esc cancel")
	b.WriteString("\n\n" + StatusBarStyle.Render(strings.Join(hints, " · ")))
	return b.String()
}

func (m EditorModel) viewAddSmart() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Add Section"))
	b.WriteString("\n\n")
	for i, t := range m.session.AvailableSmartTypes() {
		def, _ := sections.Lookup(t)
		line := def.Title + " " + DetailStyle.Render(def.Description)
		if i == m.pickCursor {
			b.WriteString(CursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + StatusBarStyle.Render("enter add · esc back"))
	return b.String()
}

func (m EditorModel) viewAddTheme() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Add Theme"))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")
	matches := m.matchingThemes()
	if len(matches) == 0 {
		b.WriteString(HintStyle.Render("No matching themes."))
		b.WriteString("\n")
	}
	for i, t := range matches {
		if i == m.pickCursor {
			b.WriteString(CursorStyle.Render("> " + t))
		} else {
			b.WriteString("  " + t)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + StatusBarStyle.Render("type to filter · enter add · esc back"))
	return b.String()
}

func sectionLabel(c sections.Config) string {
	switch c := c.(type) {
	case sections.ThemeSection:
		return c.ThemeName
	case sections.SmartSection:
		if def, ok := sections.Lookup(c.Type); ok {
			return def.Title
		}
		return string(c.Type)
	}
	return c.Key()
}

func sectionTag(c sections.Config) string {
	switch c := c.(type) {
	case sections.ThemeSection:
		return "theme"
	case sections.SmartSection:
		if !sections.Known(c.Type) {
			return "unknown"
		}
	}
	return "smart"
}
