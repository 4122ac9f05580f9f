package state

import "testing"

func TestMoveCursorWraps(t *testing.T) {
	l := NewList(sampleItems())
	l.Cursor = 0
	if !l.MoveCursorUp() {
		t.Fatalf("expected wrap move to report a change")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected wrap to last item, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() {
		t.Fatalf("expected wrap move to report a change")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected wrap to first item, got %d", l.Cursor)
	}
}

func TestMoveCursorHomeEnd(t *testing.T) {
	l := NewList(sampleItems())
	l.Cursor = 1
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor at home, got %d", l.Cursor)
	}
	if l.MoveCursorHome() {
		t.Fatalf("expected no-op home to report no change")
	}
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected cursor at end, got %d", l.Cursor)
	}
}

func TestMoveCursorPageClampsAtEdges(t *testing.T) {
	l := NewList(sampleItems())
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected page down to clamp at last item, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(2) || l.Cursor != 0 {
		t.Fatalf("expected page up to clamp at first item, got %d", l.Cursor)
	}
}

func TestMoveCursorEmptyList(t *testing.T) {
	l := NewList(nil)
	if l.MoveCursorUp() || l.MoveCursorDown() || l.MoveCursorHome() || l.MoveCursorEnd() {
		t.Fatalf("expected cursor moves on an empty list to report no change")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsViewport(t *testing.T) {
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	l := NewList(items)

	l.Cursor = 9
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 7 {
		t.Fatalf("expected offset 7 for cursor at end, got %d", l.ViewportOffset)
	}

	l.Cursor = 0
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset 0 for cursor at start, got %d", l.ViewportOffset)
	}

	l.Cursor = 5
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when viewport is unbounded, got %d", l.ViewportOffset)
	}
}
