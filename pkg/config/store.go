package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultFileName is the conventional config file location, relative to the
// working directory.
const DefaultFileName = "config.json"

// Store reads and writes the JSON config file for the `dsctl config`
// subcommands. Resolution for the deploy flow goes through viper instead;
// the store only exists so edits preserve the file's own shape rather than
// flattening in every registered default.
type Store struct {
	Path string

	values map[string]any
}

// NewStore creates a store for the config file at path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{Path: path}
}

// Load reads the config file into memory. A missing file yields the built-in
// defaults; a malformed file is an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		log.Warnf("config file %s not found, using built-in defaults", s.Path)
		s.values = DefaultsMap()
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", s.Path, err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing config file %s: %w", s.Path, err)
	}
	s.values = values
	return nil
}

// Exists reports whether the config file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Get resolves a dot-path key, e.g. "onlyoffice.secret".
// The second return is false when the key is absent.
func (s *Store) Get(key string) (any, bool) {
	var cur any = map[string]any(s.values)
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set assigns a dot-path key, creating intermediate objects as needed.
func (s *Store) Set(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	parts := strings.Split(key, ".")
	m := s.values
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// Save writes the in-memory values back to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", s.Path, err)
	}
	return nil
}

// Reset backs up any existing config file and writes the defaults in its
// place. Returns the backup path, or "" when there was nothing to back up.
func (s *Store) Reset() (string, error) {
	backup := ""
	if s.Exists() {
		backup = s.Path + ".backup"
		if err := os.Rename(s.Path, backup); err != nil {
			return "", fmt.Errorf("backing up config file: %w", err)
		}
	}
	s.values = DefaultsMap()
	if err := s.Save(); err != nil {
		return backup, err
	}
	return backup, nil
}

// DefaultsMap renders the registered defaults as a nested document, the shape
// the config file itself uses.
func DefaultsMap() map[string]any {
	out := make(map[string]any)
	for k, v := range defaultValues {
		parts := strings.Split(string(k), ".")
		m := out
		for _, part := range parts[:len(parts)-1] {
			next, ok := m[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				m[part] = next
			}
			m = next
		}
		m[parts[len(parts)-1]] = v
	}
	return out
}

// CoerceValue converts a CLI-provided string into the JSON type it reads as:
// bool, number, array/object, or plain string.
func CoerceValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
	}
	return raw
}
