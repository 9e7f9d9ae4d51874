// Package deckfile reads and writes decks as JSON for import and export.
package deckfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one slide in a deck file.
type Entry struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// File is the on-disk deck representation.
type File struct {
	Deck   string  `json:"deck"`
	Slides []Entry `json:"slides"`
}

// Save writes f to path atomically.
func Save(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a deck file. Slides without a title are rejected.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, e := range f.Slides {
		if strings.TrimSpace(e.Title) == "" {
			return File{}, fmt.Errorf("parse %s: slide %d has no title", path, i+1)
		}
	}
	return f, nil
}
