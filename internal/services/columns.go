package services

import (
	"fmt"

	"github.com/rs/zerolog"
)

// PreferenceStore persists the user's visible-column selection as a
// column key → visible map.
type PreferenceStore interface {
	LoadColumns() (map[string]bool, error)
	SaveColumns(map[string]bool) error
}

// ColumnService owns the visible-column state: read from the store once at
// construction, mutated through Toggle, written back on every change. The
// default is all columns visible; a failing store degrades to the default
// instead of blocking the table.
type ColumnService struct {
	store   PreferenceStore
	log     zerolog.Logger
	visible map[string]bool
}

func NewColumnService(store PreferenceStore, log zerolog.Logger) *ColumnService {
	s := &ColumnService{store: store, log: log, visible: defaultVisibility()}
	saved, err := store.LoadColumns()
	if err != nil {
		log.Warn().Err(err).Msg("column preferences unavailable, using defaults")
		return s
	}
	for key, vis := range saved {
		if _, known := s.visible[key]; known {
			s.visible[key] = vis
		}
	}
	return s
}

func defaultVisibility() map[string]bool {
	m := make(map[string]bool, len(ActivityColumns))
	for _, c := range ActivityColumns {
		m[c.Key] = true
	}
	return m
}

// IsVisible reports the current visibility of a column key.
func (s *ColumnService) IsVisible(key string) bool {
	return s.visible[key]
}

// VisibleColumns returns the visible keys in catalog order, ready to feed
// into the projector.
func (s *ColumnService) VisibleColumns() []string {
	out := make([]string, 0, len(ActivityColumns))
	for _, c := range ActivityColumns {
		if s.visible[c.Key] {
			out = append(out, c.Key)
		}
	}
	return out
}

// Toggle flips one column and re-persists the whole selection. A persist
// failure leaves the in-memory state flipped and is reported so the caller
// can retry.
func (s *ColumnService) Toggle(key string) error {
	if _, known := s.visible[key]; !known {
		return NewInvalidError(fmt.Sprintf("unknown column %q", key))
	}
	s.visible[key] = !s.visible[key]
	if err := s.store.SaveColumns(s.snapshot()); err != nil {
		s.log.Error().Err(err).Str("column", key).Msg("failed to persist column preferences")
		return NewUnavailableError("could not save column preferences")
	}
	return nil
}

// Reset restores the all-visible default and persists it.
func (s *ColumnService) Reset() error {
	s.visible = defaultVisibility()
	if err := s.store.SaveColumns(s.snapshot()); err != nil {
		s.log.Error().Err(err).Msg("failed to persist column preferences")
		return NewUnavailableError("could not save column preferences")
	}
	return nil
}

func (s *ColumnService) snapshot() map[string]bool {
	out := make(map[string]bool, len(s.visible))
	for k, v := range s.visible {
		out[k] = v
	}
	return out
}
