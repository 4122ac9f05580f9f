package picker

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/typeflow/font-picker/internal/catalog"
)

// SortOrder selects how fetched families are ordered for display.
type SortOrder string

const (
	// SortAlphabet orders families by locale-aware lexical comparison.
	// This is the default.
	SortAlphabet SortOrder = "alphabet"
	// SortCatalog keeps the catalog's native discovery order.
	SortCatalog SortOrder = "catalog"
)

// Valid reports whether the order is one of the known values. The empty
// string is valid and means SortAlphabet.
func (o SortOrder) Valid() bool {
	switch o {
	case "", SortAlphabet, SortCatalog:
		return true
	}
	return false
}

func sortFonts(fonts []catalog.Font, order SortOrder) {
	if order == SortCatalog {
		return
	}
	c := collate.New(language.Und, collate.Loose)
	sort.SliceStable(fonts, func(i, j int) bool {
		return c.CompareString(fonts[i].Family, fonts[j].Family) < 0
	})
}
