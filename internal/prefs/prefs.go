// Package prefs stores per-user preferences as YAML files, one file per user
// under the preferences directory.
package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ruminaider/brickshelf/internal/config"
	"github.com/ruminaider/brickshelf/internal/sections"
)

var safeUser = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileStore keeps preferences in <dir>/<user>.yaml.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(userID string) (string, error) {
	if !safeUser.MatchString(userID) {
		return "", fmt.Errorf("invalid user id %q", userID)
	}
	return filepath.Join(s.dir, userID+".yaml"), nil
}

// Read returns the preferences of userID. A missing file returns empty
// preferences and false.
func (s *FileStore) Read(userID string) (config.UserPreferences, bool, error) {
	path, err := s.path(userID)
	if err != nil {
		return config.UserPreferences{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.UserPreferences{}, false, nil
		}
		return config.UserPreferences{}, false, fmt.Errorf("reading preferences: %w", err)
	}
	p, err := config.ParseUserPreferences(data)
	if err != nil {
		return config.UserPreferences{}, false, err
	}
	return p, true, nil
}

// Write replaces the preferences file of userID. The file is written to a
// temp name and renamed so a failed write leaves the old file intact.
func (s *FileStore) Write(userID string, p config.UserPreferences) error {
	path, err := s.path(userID)
	if err != nil {
		return err
	}
	data, err := config.MarshalUserPreferences(p)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// LoadHomeSections implements homeconfig.PreferenceStore.
func (s *FileStore) LoadHomeSections(_ context.Context, userID string) ([]sections.Config, bool, error) {
	p, ok, err := s.Read(userID)
	if err != nil || !ok || p.HomeSections == nil {
		return nil, false, err
	}
	return p.HomeSections, true, nil
}

// SaveHomeSections implements homeconfig.PreferenceStore. Only the section
// list is replaced; other preferences in the file are kept.
func (s *FileStore) SaveHomeSections(_ context.Context, userID string, list []sections.Config) error {
	p, _, err := s.Read(userID)
	if err != nil {
		return err
	}
	p.HomeSections = sections.List(sections.Clone(list))
	if p.HomeSections == nil {
		p.HomeSections = sections.List{}
	}
	return s.Write(userID, p)
}
