// Package catalog defines the font catalog collaborator the picker
// synchronizes against: the family→font mapping, the authoritative
// active-font record, and asynchronous discovery.
package catalog

import "context"

// Service is the catalog surface the picker consumes. Init performs the
// one-time asynchronous discovery; the remaining operations are synchronous
// model reads and mutators. Any download a mutator triggers is internal to
// the service.
type Service interface {
	// Init resolves with the full catalog or fails. It is called exactly
	// once, during picker bootstrap.
	Init(ctx context.Context) (*FontList, error)

	// Fonts returns a snapshot of the current catalog.
	Fonts() *FontList

	// ActiveFont returns the authoritative active font, if one is set.
	ActiveFont() (Font, bool)

	// SetActiveFont records family as the active font.
	SetActiveFont(family string)

	// AddFont registers a new family, optionally triggering a download.
	AddFont(family string, download bool)

	// RemoveFont drops the family from the catalog.
	RemoveFont(family string)

	// SelectorSuffix disambiguates generated element ids so multiple
	// picker instances can coexist.
	SelectorSuffix() string
}

// Downloader retrieves font assets for newly registered families.
type Downloader interface {
	Download(ctx context.Context, font Font) error
}

// Store holds catalog entries and the active family. Implemented by
// internal/state so the library stays storage-agnostic.
type Store interface {
	Entries() []Font
	SetEntries([]Font)
	Active() string
	SetActive(string)
}

// SelectorSuffix derives the element-id suffix for a picker instance.
func SelectorSuffix(pickerID string) string {
	if pickerID == "" {
		return ""
	}
	return "-" + pickerID
}
