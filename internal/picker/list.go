package picker

import (
	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/dom"
	"github.com/typeflow/font-picker/internal/logging/events"
)

const (
	classFontButton = "font-button"
	classActiveFont = "active-font"
)

// List renders catalog fonts as an ordered set of activatable entries and
// keeps at most one of them highlighted. Highlight lookups go through the
// document id index at call time; no node handles are cached across renders.
type List struct {
	doc       *dom.Document
	container *dom.Node
	suffix    string

	onActivate func(family string)
}

// NewList wires a renderer over the given list container. onActivate fires
// when an entry is activated.
func NewList(doc *dom.Document, container *dom.Node, suffix string, onActivate func(family string)) *List {
	return &List{doc: doc, container: container, suffix: suffix, onActivate: onActivate}
}

// Render replaces the rendered entries with one per font, in the given
// order, and highlights the entry for activeFamily. After completion
// exactly zero or one entry is highlighted.
func (l *List) Render(fonts []catalog.Font, activeFamily string) {
	for _, child := range l.container.Children() {
		child.Remove()
	}
	for _, font := range fonts {
		l.container.AppendChild(l.newEntry(font))
	}
	l.SetHighlighted(activeFamily)
}

// InsertEntry creates one entry for the font. A non-negative index within
// bounds inserts before the entry currently at that position; anything else
// appends. Highlight state is untouched.
func (l *List) InsertEntry(font catalog.Font, index int) {
	l.container.InsertAt(l.newEntry(font), index)
	events.Picker.EntryInserted(font.Family, index)
}

// RemoveEntry removes the entry and its containing item for the family.
// An absent entry yields EntryNotFoundError: the caller's model and the
// rendered list have desynchronized.
func (l *List) RemoveEntry(family string) error {
	button := l.doc.GetElementByID(l.ButtonID(family))
	if button == nil {
		return EntryNotFoundError{Family: family}
	}
	item := button.Parent()
	if item == l.container {
		button.Remove()
	} else {
		item.Remove()
	}
	events.Picker.EntryRemoved(family)
	return nil
}

// SetHighlighted clears the previous highlight and applies it to the entry
// for family. Silently does nothing when that entry has not been rendered
// yet (the benign first-load race).
func (l *List) SetHighlighted(family string) {
	for _, item := range l.container.Children() {
		for _, button := range item.Children() {
			button.RemoveClass(classActiveFont)
		}
	}
	button := l.doc.GetElementByID(l.ButtonID(family))
	if button == nil {
		return
	}
	button.AddClass(classActiveFont)
	events.Picker.Highlight(family)
}

// Highlighted returns the family of the highlighted entry, if any.
func (l *List) Highlighted() (string, bool) {
	for _, item := range l.container.Children() {
		for _, button := range item.Children() {
			if button.HasClass(classActiveFont) {
				return button.Text(), true
			}
		}
	}
	return "", false
}

// Families returns the rendered families in list order.
func (l *List) Families() []string {
	items := l.container.Children()
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, button := range item.Children() {
			if button.HasClass(classFontButton) {
				out = append(out, button.Text())
			}
		}
	}
	return out
}

// ButtonID returns the full element id of the entry button for family.
func (l *List) ButtonID(family string) string {
	return "font-button-" + EntryID(family) + l.suffix
}

func (l *List) newEntry(font catalog.Font) *dom.Node {
	family := font.Family
	item := l.doc.CreateElement("")
	button := l.doc.CreateElement(l.ButtonID(family))
	button.AddClass(classFontButton)
	button.SetText(family)
	button.OnActivate(func() {
		if l.onActivate != nil {
			l.onActivate(family)
		}
	})
	item.AppendChild(button)
	return item
}
