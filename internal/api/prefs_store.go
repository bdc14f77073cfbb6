package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const columnsStorageKey = "activities_table_columns"

// FilePreferenceStore persists UI preferences as a small JSON object on
// disk, one top-level key per preference. The column selection lives under
// "activities_table_columns" as a column key → visible map, mirroring the
// browser-storage layout the web client uses.
type FilePreferenceStore struct {
	path string
}

func NewFilePreferenceStore(path string) *FilePreferenceStore {
	return &FilePreferenceStore{path: path}
}

// LoadColumns reads the persisted column selection. A missing file is not
// an error: it means no preference was ever saved.
func (s *FilePreferenceStore) LoadColumns() (map[string]bool, error) {
	prefs, err := s.read()
	if err != nil {
		return nil, err
	}
	raw, ok := prefs[columnsStorageKey]
	if !ok {
		return map[string]bool{}, nil
	}
	var cols map[string]bool
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// SaveColumns rewrites the column selection, preserving any other
// preferences stored in the same file.
func (s *FilePreferenceStore) SaveColumns(cols map[string]bool) error {
	prefs, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cols)
	if err != nil {
		return err
	}
	prefs[columnsStorageKey] = raw
	return s.write(prefs)
}

func (s *FilePreferenceStore) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	prefs := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *FilePreferenceStore) write(prefs map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, b, 0o644)
}
