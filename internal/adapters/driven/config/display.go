package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/iripple/boardroom/internal/core/domain"
	"github.com/iripple/boardroom/internal/core/ports/driven"
)

// Ensure DisplayStore implements the interface.
var _ driven.DisplaySettings = (*DisplayStore)(nil)

// Built-in defaults, used when no display file is configured or a field
// is left unset.
const (
	DefaultMeetURL     = "https://meet.google.com/dxf-xuav-yim"
	DefaultZoomURL     = "https://us02web.zoom.us/j/84074848779?pwd=3i06P8qEiyesAnbq3b1Qh60TyKkqsp.1"
	DefaultInviteEmail = "iems@iripple.com"
)

// displayFile is the TOML shape of the display configuration file.
type displayFile struct {
	Display struct {
		MeetURL     string `toml:"meet_url"`
		ZoomURL     string `toml:"zoom_url"`
		InviteEmail string `toml:"invite_email"`
	} `toml:"display"`
	Exclusions struct {
		Titles     []string `toml:"titles"`
		MeetingIDs []string `toml:"meeting_ids"`
	} `toml:"exclusions"`
}

// DisplayStore holds the hot-reloadable display settings. Reads are safe
// for concurrent requests; Reload swaps the whole snapshot under a write
// lock.
type DisplayStore struct {
	mu   sync.RWMutex
	path string

	display    domain.DisplayConfig
	exclusions domain.ExclusionList
}

// NewDisplayStore loads display settings from path. An empty path or a
// missing file yields the built-in defaults.
func NewDisplayStore(path string) (*DisplayStore, error) {
	s := &DisplayStore{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the display file. Fields left unset in the file keep
// their defaults; a missing file is not an error.
func (s *DisplayStore) Reload() error {
	display := domain.DisplayConfig{
		MeetURL:     DefaultMeetURL,
		ZoomURL:     DefaultZoomURL,
		InviteEmail: DefaultInviteEmail,
	}
	var exclusions domain.ExclusionList

	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		switch {
		case os.IsNotExist(err):
			// Keep defaults.
		case err != nil:
			return fmt.Errorf("read display config: %w", err)
		default:
			var f displayFile
			if err := toml.Unmarshal(raw, &f); err != nil {
				return fmt.Errorf("parse display config: %w", err)
			}
			if f.Display.MeetURL != "" {
				display.MeetURL = f.Display.MeetURL
			}
			if f.Display.ZoomURL != "" {
				display.ZoomURL = f.Display.ZoomURL
			}
			if f.Display.InviteEmail != "" {
				display.InviteEmail = f.Display.InviteEmail
			}
			exclusions = domain.ExclusionList{
				Titles:     f.Exclusions.Titles,
				MeetingIDs: f.Exclusions.MeetingIDs,
			}
		}
	}

	s.mu.Lock()
	s.display = display
	s.exclusions = exclusions
	s.mu.Unlock()
	return nil
}

// Display returns the static links and invite address.
func (s *DisplayStore) Display() domain.DisplayConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// Exclusions returns the current exclusion list.
func (s *DisplayStore) Exclusions() domain.ExclusionList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exclusions
}

// Path returns the backing file path, empty when running on defaults.
func (s *DisplayStore) Path() string {
	return s.path
}
