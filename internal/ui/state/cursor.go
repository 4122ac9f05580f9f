package state

// MoveCursorUp moves the cursor one item up, wrapping at the top.
func (l *List) MoveCursorUp() bool {
	return l.stepCursor(-1)
}

// MoveCursorDown moves the cursor one item down, wrapping at the bottom.
func (l *List) MoveCursorDown() bool {
	return l.stepCursor(1)
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	return l.placeCursor(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	return l.placeCursor(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.pageCursor(-1, maxVisible)
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.pageCursor(1, maxVisible)
}

func (l *List) stepCursor(dir int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	next := l.Cursor + dir
	switch {
	case next < 0:
		next = n - 1
	case next >= n:
		next = 0
	}
	return l.placeCursor(next)
}

// pageCursor moves by one viewport of rows, clamping at the list edges. A
// non-positive viewport means the whole list is visible.
func (l *List) pageCursor(dir, maxVisible int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	page := maxVisible
	if page < 1 || page > n {
		page = n
	}
	from := clamp(l.Cursor, 0, n-1)
	return l.placeCursor(from + dir*page)
}

func (l *List) placeCursor(index int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(index, 0, n-1)
	return l.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays inside
// a viewport of maxVisible rows.
func (l *List) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	} else if bottom := l.Cursor - maxVisible + 1; l.ViewportOffset < bottom {
		l.ViewportOffset = bottom
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
}
