// Package editor implements the draft workflow for customising home
// sections: a session copies the saved list, edits the copy, and writes it
// back only on Save.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ruminaider/brickshelf/internal/sections"
)

var (
	// ErrSessionClosed is returned by every operation after Save or Cancel.
	ErrSessionClosed = errors.New("editor session is closed")
	// ErrIndexOutOfRange is returned for a bad Remove or Reorder index.
	ErrIndexOutOfRange = errors.New("section index out of range")
	// ErrWrongMode is returned when an operation is not valid in the
	// current mode, e.g. saving while a picker is open.
	ErrWrongMode = errors.New("operation not allowed in current mode")
	// ErrEmptyTheme is returned by AddTheme for a blank name.
	ErrEmptyTheme = errors.New("theme name is empty")
	// ErrUnknownType is returned by AddSmart for an unregistered type.
	ErrUnknownType = errors.New("unknown smart section type")
)

// Mode is the editor's current screen.
type Mode int

const (
	ModeList Mode = iota
	ModeAddSmart
	ModeAddTheme
	ModeClosed
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeAddSmart:
		return "add-smart"
	case ModeAddTheme:
		return "add-theme"
	case ModeClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SaveFunc persists a whole configuration list.
type SaveFunc func(ctx context.Context, list []sections.Config) error

// Session is one open editor. It is not safe for concurrent use.
type Session struct {
	draft []sections.Config
	mode  Mode
	saved bool
}

// Open starts a session on a copy of initial. Each call starts fresh, so
// edits from an earlier cancelled session never leak in.
func Open(initial []sections.Config) *Session {
	draft := sections.Clone(initial)
	if draft == nil {
		draft = []sections.Config{}
	}
	return &Session{draft: draft, mode: ModeList}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Saved reports whether the session closed through a successful Save.
func (s *Session) Saved() bool { return s.saved }

// Draft returns a copy of the current draft.
func (s *Session) Draft() []sections.Config {
	return sections.Clone(s.draft)
}

// Len returns the number of entries in the draft.
func (s *Session) Len() int { return len(s.draft) }

// Empty reports whether the user removed every section. The list view
// shows its "no sections configured" state in that case.
func (s *Session) Empty() bool { return len(s.draft) == 0 }

// IsDefault reports whether the draft matches the built-in default.
func (s *Session) IsDefault() bool { return sections.IsDefaultConfig(s.draft) }

// ShowReset reports whether the reset action should be offered.
func (s *Session) ShowReset() bool { return s.mode == ModeList && !s.IsDefault() }

func (s *Session) require(modes ...Mode) error {
	if s.mode == ModeClosed {
		return ErrSessionClosed
	}
	for _, m := range modes {
		if s.mode == m {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrWrongMode, s.mode)
}

// Remove drops the entry at index.
func (s *Session) Remove(index int) error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	if index < 0 || index >= len(s.draft) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.draft = append(s.draft[:index:index], s.draft[index+1:]...)
	return nil
}

// Reorder moves the entry at from to position to. Every other entry keeps
// its relative order.
func (s *Session) Reorder(from, to int) error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	n := len(s.draft)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: %d -> %d", ErrIndexOutOfRange, from, to)
	}
	s.draft = Move(s.draft, from, to)
	return nil
}

// Move returns a copy of list with the element at from moved to to.
func Move[T any](list []T, from, to int) []T {
	out := make([]T, 0, len(list))
	item := list[from]
	for i, v := range list {
		if i == from {
			continue
		}
		out = append(out, v)
	}
	out = append(out, item)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = item
	return out
}

// BeginAddSmart opens the smart-section picker.
func (s *Session) BeginAddSmart() error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	s.mode = ModeAddSmart
	return nil
}

// BeginAddTheme opens the theme picker.
func (s *Session) BeginAddTheme() error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	s.mode = ModeAddTheme
	return nil
}

// Back leaves a picker without adding anything.
func (s *Session) Back() error {
	if err := s.require(ModeList, ModeAddSmart, ModeAddTheme); err != nil {
		return err
	}
	s.mode = ModeList
	return nil
}

// AddSmart appends t unless its key is already in the draft, then returns
// to the list. It reports whether anything was appended.
func (s *Session) AddSmart(t sections.SmartType) (bool, error) {
	if err := s.require(ModeList, ModeAddSmart); err != nil {
		return false, err
	}
	if !sections.Known(t) {
		return false, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	s.mode = ModeList
	return s.appendUnique(sections.Smart(t)), nil
}

// AddTheme appends a theme section unless theme:<lowercased name> is
// already in the draft, then returns to the list.
func (s *Session) AddTheme(name string) (bool, error) {
	if err := s.require(ModeList, ModeAddTheme); err != nil {
		return false, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrEmptyTheme
	}
	s.mode = ModeList
	return s.appendUnique(sections.Theme(name)), nil
}

func (s *Session) appendUnique(c sections.Config) bool {
	if sections.Contains(s.draft, c.Key()) {
		return false
	}
	s.draft = append(s.draft, c)
	return true
}

// AvailableSmartTypes lists registered smart types not yet in the draft.
func (s *Session) AvailableSmartTypes() []sections.SmartType {
	var out []sections.SmartType
	for _, t := range sections.AllSmartTypes {
		if !sections.Contains(s.draft, string(t)) {
			out = append(out, t)
		}
	}
	return out
}

// AvailableThemes filters all down to themes not yet in the draft.
func (s *Session) AvailableThemes(all []string) []string {
	var out []string
	for _, name := range all {
		if !sections.Contains(s.draft, sections.ThemeKey(name)) {
			out = append(out, name)
		}
	}
	return out
}

// Reset replaces the draft with the default configuration. The session
// stays in list mode and nothing is written until Save.
func (s *Session) Reset() error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	s.draft = sections.DefaultConfig()
	return nil
}

// Save writes the draft through save and closes the session. On failure the
// session stays open in list mode with the draft intact so the caller can
// surface the error and retry.
func (s *Session) Save(ctx context.Context, save SaveFunc) error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	if err := save(ctx, sections.Clone(s.draft)); err != nil {
		return err
	}
	s.mode = ModeClosed
	s.saved = true
	return nil
}

// Commit closes the session as saved after the caller has persisted
// Draft itself, e.g. from a background save. It is only valid in list mode.
func (s *Session) Commit() error {
	if err := s.require(ModeList); err != nil {
		return err
	}
	s.mode = ModeClosed
	s.saved = true
	return nil
}

// Cancel discards the draft and closes the session.
func (s *Session) Cancel() {
	s.mode = ModeClosed
	s.draft = nil
}
