package catalog

import (
	"context"
	"fmt"

	"github.com/typeflow/font-picker/internal/logging/events"
)

// Options configure a Library instance.
type Options struct {
	PickerID      string
	Families      []string // allow-list; empty admits every family
	Categories    []string
	Scripts       []string
	Variants      []string
	Limit         int // 0 means unlimited
	DefaultFamily string
	OnChange      func(Font)
	Downloader    Downloader
	Seed          []Font // defaults to BuiltinFonts
}

// Library is the in-process catalog service. Discovery filters the seed
// table by the configured allow-list, categories, scripts, and variants,
// then truncates to the limit, preserving seed (popularity) order.
type Library struct {
	store Store
	opts  Options
}

// NewLibrary wires a Library over the given store.
func NewLibrary(store Store, opts Options) *Library {
	return &Library{store: store, opts: opts}
}

// Init performs discovery and populates the store. It resolves or fails
// exactly once per picker lifecycle; callers own retry policy (there is
// none).
func (l *Library) Init(ctx context.Context) (*FontList, error) {
	events.Catalog.FetchStart()
	if err := ctx.Err(); err != nil {
		events.Catalog.FetchFailed(err)
		return nil, fmt.Errorf("catalog init: %w", err)
	}
	seed := l.opts.Seed
	if seed == nil {
		seed = BuiltinFonts()
	}
	entries := make([]Font, 0, len(seed))
	for _, f := range seed {
		if !l.admits(f) {
			continue
		}
		entries = append(entries, f)
		if l.opts.Limit > 0 && len(entries) == l.opts.Limit {
			break
		}
	}
	l.store.SetEntries(entries)
	l.store.SetActive(l.initialActive(entries))
	events.Catalog.FetchLoaded(len(entries))
	return NewFontList(entries...), nil
}

// Fonts returns a snapshot of the current catalog.
func (l *Library) Fonts() *FontList {
	return NewFontList(l.store.Entries()...)
}

// ActiveFont returns the active font, if set.
func (l *Library) ActiveFont() (Font, bool) {
	active := l.store.Active()
	if active == "" {
		return Font{}, false
	}
	for _, f := range l.store.Entries() {
		if f.Family == active {
			return f, true
		}
	}
	return Font{Family: active}, true
}

// SetActiveFont records family as active and notifies the host callback.
func (l *Library) SetActiveFont(family string) {
	l.store.SetActive(family)
	events.Catalog.Activated(family)
	if l.opts.OnChange != nil {
		if f, ok := l.ActiveFont(); ok {
			l.opts.OnChange(f)
		}
	}
}

// AddFont registers the family. Already-present families are left alone;
// the picker enforces its duplicate precondition before calling here. When
// download is set and a Downloader is configured, retrieval runs in the
// background; failures are logged, never surfaced.
func (l *Library) AddFont(family string, download bool) {
	entries := l.store.Entries()
	for _, f := range entries {
		if f.Family == family {
			return
		}
	}
	font := l.lookupSeed(family)
	l.store.SetEntries(append(entries, font))
	events.Catalog.Added(family, download)
	if download && l.opts.Downloader != nil {
		go func() {
			if err := l.opts.Downloader.Download(context.Background(), font); err != nil {
				events.Catalog.DownloadFailed(family, err)
			}
		}()
	}
}

// RemoveFont drops the family. Removing the active family clears the
// active record.
func (l *Library) RemoveFont(family string) {
	entries := l.store.Entries()
	kept := entries[:0]
	for _, f := range entries {
		if f.Family != family {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(entries) {
		return
	}
	l.store.SetEntries(kept)
	if l.store.Active() == family {
		l.store.SetActive("")
	}
	events.Catalog.Removed(family)
}

// SelectorSuffix returns the instance id suffix.
func (l *Library) SelectorSuffix() string {
	return SelectorSuffix(l.opts.PickerID)
}

func (l *Library) initialActive(entries []Font) string {
	if l.opts.DefaultFamily != "" {
		return l.opts.DefaultFamily
	}
	if len(entries) > 0 {
		return entries[0].Family
	}
	return ""
}

func (l *Library) lookupSeed(family string) Font {
	seed := l.opts.Seed
	if seed == nil {
		seed = BuiltinFonts()
	}
	for _, f := range seed {
		if f.Family == family {
			return f
		}
	}
	return Font{Family: family}
}

func (l *Library) admits(f Font) bool {
	if len(l.opts.Families) > 0 && !containsString(l.opts.Families, f.Family) {
		return false
	}
	if len(l.opts.Categories) > 0 && !containsString(l.opts.Categories, f.Category) {
		return false
	}
	if len(l.opts.Scripts) > 0 && !intersects(l.opts.Scripts, f.Scripts) {
		return false
	}
	if len(l.opts.Variants) > 0 && !intersects(l.opts.Variants, f.Variants) {
		return false
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func intersects(want, have []string) bool {
	for _, w := range want {
		if containsString(have, w) {
			return true
		}
	}
	return false
}
