package state

import "testing"

func TestSetFilterNarrowsItems(t *testing.T) {
	l := NewList(sampleItems())
	l.SetFilter("roboto", 6)
	if len(l.Items) != 1 || l.Items[0].Label != "Roboto" {
		t.Fatalf("expected only Roboto to match, got %v", l.Items)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor on best match, got %d", l.Cursor)
	}
}

func TestClearingFilterRestoresCursor(t *testing.T) {
	l := NewList(sampleItems())
	l.Cursor = 1
	l.SetFilter("roboto", 6)
	l.SetFilter("", 0)
	if len(l.Items) != 3 {
		t.Fatalf("expected full item set after clearing filter, got %d", len(l.Items))
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor restored to 1, got %d", l.Cursor)
	}
}

func TestFilterPrefersExactAndPrefixMatches(t *testing.T) {
	items := []Item{
		{ID: "a", Label: "Roboto Mono"},
		{ID: "b", Label: "Roboto"},
	}
	if idx := BestMatchIndex(items, "Roboto"); idx != 1 {
		t.Fatalf("expected exact match to win, got %d", idx)
	}
	if idx := BestMatchIndex(items, "roboto m"); idx != 0 {
		t.Fatalf("expected prefix match to win, got %d", idx)
	}
}

func TestFilterItemsFallsBackToSubstring(t *testing.T) {
	items := []Item{
		{ID: "font-button-open-sans", Label: "Open Sans"},
		{ID: "font-button-lato", Label: "Lato"},
	}
	// The hyphen defeats the fuzzy pass on labels; the substring fallback
	// still matches the entry id.
	got := FilterItems(items, "open-sans")
	if len(got) != 1 || got[0].Label != "Open Sans" {
		t.Fatalf("expected Open Sans match, got %v", got)
	}
}

func TestFilterItemsEmptyQueryReturnsClone(t *testing.T) {
	items := sampleItems()
	got := FilterItems(items, "  ")
	if len(got) != len(items) {
		t.Fatalf("expected full set for blank query, got %d", len(got))
	}
	got[0].Label = "Mutated"
	if items[0].Label != "Lato" {
		t.Fatalf("expected clone, source was mutated")
	}
}

func TestInsertFilterTextAtCursor(t *testing.T) {
	l := NewList(sampleItems())
	l.SetFilter("rb", 1)
	if !l.InsertFilterText("o") {
		t.Fatalf("expected insert to succeed")
	}
	if l.Filter != "rob" {
		t.Fatalf("expected filter %q, got %q", "rob", l.Filter)
	}
	if l.FilterCursorPos() != 2 {
		t.Fatalf("expected cursor after inserted rune, got %d", l.FilterCursorPos())
	}
}

func TestDeleteFilterRuneBackward(t *testing.T) {
	l := NewList(sampleItems())
	l.SetFilter("roboto", 6)
	if !l.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete to succeed")
	}
	if l.Filter != "robot" {
		t.Fatalf("expected filter %q, got %q", "robot", l.Filter)
	}
	l.SetFilter("", 0)
	if l.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete on empty filter to fail")
	}
}

func TestDeleteFilterWordBackward(t *testing.T) {
	l := NewList(sampleItems())
	l.SetFilter("open sans", 9)
	if !l.DeleteFilterWordBackward() {
		t.Fatalf("expected word delete to succeed")
	}
	if l.Filter != "open " {
		t.Fatalf("expected filter %q, got %q", "open ", l.Filter)
	}
	if l.FilterCursorPos() != 5 {
		t.Fatalf("expected cursor at %d, got %d", 5, l.FilterCursorPos())
	}
}

func TestFilterCursorMovement(t *testing.T) {
	l := NewList(sampleItems())
	l.SetFilter("lato", 4)

	if !l.MoveFilterCursorStart() || l.FilterCursorPos() != 0 {
		t.Fatalf("expected cursor at start, got %d", l.FilterCursorPos())
	}
	if l.MoveFilterCursorRuneBackward() {
		t.Fatalf("expected backward move at start to fail")
	}
	if !l.MoveFilterCursorRuneForward() || l.FilterCursorPos() != 1 {
		t.Fatalf("expected cursor at 1, got %d", l.FilterCursorPos())
	}
	if !l.MoveFilterCursorEnd() || l.FilterCursorPos() != 4 {
		t.Fatalf("expected cursor at end, got %d", l.FilterCursorPos())
	}
	if l.MoveFilterCursorRuneForward() {
		t.Fatalf("expected forward move at end to fail")
	}
}

func TestNoMatchesLeavesEmptyItems(t *testing.T) {
	l := NewList(sampleItems())
	l.SetFilter("zzzz", 4)
	if len(l.Items) != 0 {
		t.Fatalf("expected no matches, got %v", l.Items)
	}
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset reset, got %d/%d", l.Cursor, l.ViewportOffset)
	}
}
