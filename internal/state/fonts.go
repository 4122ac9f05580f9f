// Package state provides the mutable stores backing the catalog service.
package state

import "github.com/typeflow/font-picker/internal/catalog"

// FontStore holds catalog entries and the active family.
type FontStore interface {
	catalog.Store
}

type fontStore struct {
	entries []catalog.Font
	active  string
}

// NewFontStore returns an empty store.
func NewFontStore() FontStore {
	return &fontStore{}
}

func (s *fontStore) Entries() []catalog.Font {
	return cloneFonts(s.entries)
}

func (s *fontStore) SetEntries(entries []catalog.Font) {
	s.entries = cloneFonts(entries)
}

func (s *fontStore) Active() string {
	return s.active
}

func (s *fontStore) SetActive(family string) {
	s.active = family
}

func cloneFonts(entries []catalog.Font) []catalog.Font {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]catalog.Font, len(entries))
	copy(dup, entries)
	return dup
}
