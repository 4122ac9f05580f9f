package catalog

// Font describes one typographic font family. Identity is the Family string,
// case-sensitive and unique within a catalog.
type Font struct {
	Family   string
	Category string
	Scripts  []string
	Variants []string
}

// FontList is an ordered family→Font mapping. Insertion order reflects
// catalog discovery order; consumers re-sort for display when needed.
type FontList struct {
	order []string
	fonts map[string]Font
}

// NewFontList builds a list from the given fonts, keeping first-seen order
// and dropping duplicate families.
func NewFontList(fonts ...Font) *FontList {
	l := &FontList{fonts: make(map[string]Font, len(fonts))}
	for _, f := range fonts {
		l.Add(f)
	}
	return l
}

// Len returns the number of families.
func (l *FontList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}

// Families returns the family names in list order.
func (l *FontList) Families() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Fonts returns the fonts in list order.
func (l *FontList) Fonts() []Font {
	if l == nil {
		return nil
	}
	out := make([]Font, 0, len(l.order))
	for _, family := range l.order {
		out = append(out, l.fonts[family])
	}
	return out
}

// Has reports whether the family is present.
func (l *FontList) Has(family string) bool {
	if l == nil {
		return false
	}
	_, ok := l.fonts[family]
	return ok
}

// Get returns the font for the family.
func (l *FontList) Get(family string) (Font, bool) {
	if l == nil {
		return Font{}, false
	}
	f, ok := l.fonts[family]
	return f, ok
}

// Add appends the font unless its family is already present.
func (l *FontList) Add(f Font) bool {
	if f.Family == "" || l.Has(f.Family) {
		return false
	}
	if l.fonts == nil {
		l.fonts = make(map[string]Font)
	}
	l.order = append(l.order, f.Family)
	l.fonts[f.Family] = f
	return true
}

// Remove drops the family from the list.
func (l *FontList) Remove(family string) bool {
	if !l.Has(family) {
		return false
	}
	delete(l.fonts, family)
	for i, existing := range l.order {
		if existing == family {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns an independent copy of the list.
func (l *FontList) Clone() *FontList {
	if l == nil {
		return NewFontList()
	}
	return NewFontList(l.Fonts()...)
}
