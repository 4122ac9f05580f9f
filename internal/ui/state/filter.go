package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter query and filter cursor position. Entering a
// query remembers the list cursor; clearing it restores the remembered
// position when it still exists.
func (l *List) SetFilter(query string, pos int) {
	hadQuery := strings.TrimSpace(l.Filter) != ""
	trimmed := strings.TrimSpace(query)
	l.Filter = query
	l.FilterCursor = clamp(pos, 0, len([]rune(query)))
	if trimmed != "" {
		if !hadQuery {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
	}
	l.applyFilter()
	switch {
	case trimmed != "" && len(l.Items) > 0:
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	case trimmed == "" && hadQuery:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *List) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = n - 1
		return
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset >= n {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *List) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text into the filter at the cursor position.
func (l *List) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	pos := l.FilterCursorPos()
	l.spliceFilter(pos, pos, text)
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.spliceFilter(pos-1, pos, "")
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor, along with
// any trailing spaces between it and the cursor.
func (l *List) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	start := pos
	for start > 0 && unicode.IsSpace(runes[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	l.spliceFilter(start, pos, "")
	return true
}

// spliceFilter replaces the rune range [from, to) with text and leaves the
// filter cursor after the inserted text.
func (l *List) spliceFilter(from, to int, text string) {
	runes := []rune(l.Filter)
	insert := []rune(text)
	next := make([]rune, 0, len(runes)-(to-from)+len(insert))
	next = append(next, runes[:from]...)
	next = append(next, insert...)
	next = append(next, runes[to:]...)
	l.SetFilter(string(next), from+len(insert))
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (l *List) MoveFilterCursorStart() bool {
	return l.moveFilterCursorTo(0)
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (l *List) MoveFilterCursorEnd() bool {
	return l.moveFilterCursorTo(len([]rune(l.Filter)))
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune left.
func (l *List) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursorTo(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the filter cursor one rune right.
func (l *List) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursorTo(l.FilterCursorPos() + 1)
}

func (l *List) moveFilterCursorTo(pos int) bool {
	next := clamp(pos, 0, len([]rune(l.Filter)))
	if next == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = next
	return true
}

// FilterItems returns the items matching the query, preferring fuzzy matches
// on the label and falling back to substring containment on label or id.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if fuzzy.MatchNormalizedFold(trimmed, item.Label) {
			matched = append(matched, item)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	needle := strings.ToLower(trimmed)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), needle) ||
			strings.Contains(strings.ToLower(item.ID), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// BestMatchIndex returns the index of the item matching the query best:
// exact label, then label prefix, then label substring, then the closest
// fuzzy match by edit distance.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	needle := strings.ToLower(trimmed)
	exact, prefix, substr := -1, -1, -1
	for i, item := range items {
		label := strings.ToLower(item.Label)
		switch {
		case exact < 0 && label == needle:
			exact = i
		case prefix < 0 && strings.HasPrefix(label, needle):
			prefix = i
		case substr < 0 && strings.Contains(label, needle):
			substr = i
		}
	}
	switch {
	case exact >= 0:
		return exact
	case prefix >= 0:
		return prefix
	case substr >= 0:
		return substr
	}
	best, bestDist := 0, -1
	for i, item := range items {
		dist := fuzzy.RankMatchNormalizedFold(trimmed, item.Label)
		if dist < 0 {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
