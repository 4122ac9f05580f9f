// Package state tracks the dropdown list's presentation state: items,
// cursor, filter, and viewport.
package state

// Item is one selectable row of the dropdown.
type Item struct {
	ID    string // entry button element id
	Label string // font family
}

// List holds the expanded dropdown's item state. Items is the filtered
// view over Full; the cursor indexes into Items.
type List struct {
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs list state over the given items.
func NewList(items []Item) *List {
	l := &List{Cursor: -1, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item id or label.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id || item.Label == id {
			return i
		}
	}
	return -1
}

// UpdateItems refreshes the full item set, re-applies the filter, and keeps
// the viewport offset when still valid.
func (l *List) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// CursorItem returns the item under the cursor.
func (l *List) CursorItem() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// MoveCursorTo places the cursor on the item matching id, when present.
func (l *List) MoveCursorTo(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
