// Package session persists the authenticated API session between runs.
// The session file lives in the data directory next to the listing stores;
// those stores never read it directly, they are handed the user id.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bugraisin/emass-tui/internal/emass"
)

// Load reads the session file. A missing or unreadable file degrades to
// logged-out; a corrupted file is cleared first so the next run starts clean.
func Load(path string) emass.Session {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("session: read: %v", err)
		}
		return emass.Session{}
	}

	var sess emass.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("session: corrupted, clearing: %v", err)
		if rmErr := os.Remove(path); rmErr != nil {
			log.Printf("session: remove corrupted file: %v", rmErr)
		}
		return emass.Session{}
	}
	return sess
}

// Save writes the session file, creating directories as needed.
func Save(path string, sess emass.Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear logs out by removing the session file. A missing file is fine.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
