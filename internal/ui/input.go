package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typeflow/font-picker/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.picker.Expanded() {
		if handled, cmd := m.handleTextInput(key); handled {
			return cmd
		}
		return m.handleListKey(key)
	}
	return m.handleCollapsedKey(key)
}

func (m *Model) handleCollapsedKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter, tea.KeyDown:
		m.doc.DispatchActivation(m.doc.GetElementByID(m.picker.ButtonID()))
		m.syncAfterToggle()
		return nil
	case tea.KeyEsc:
		return tea.Quit
	}
	if key.String() == "q" {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleListKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		return m.activateCursorCmd()
	case tea.KeyEsc:
		m.picker.Toggle()
		m.syncAfterToggle()
		return nil
	case tea.KeyUp:
		if m.list.MoveCursorUp() {
			events.Picker.Cursor(m.list.Cursor)
		}
	case tea.KeyDown:
		if m.list.MoveCursorDown() {
			events.Picker.Cursor(m.list.Cursor)
		}
	case tea.KeyPgUp:
		if m.list.MoveCursorPageUp(m.maxVisibleItems()) {
			events.Picker.Cursor(m.list.Cursor)
		}
	case tea.KeyPgDown:
		if m.list.MoveCursorPageDown(m.maxVisibleItems()) {
			events.Picker.Cursor(m.list.Cursor)
		}
	case tea.KeyHome:
		if m.list.MoveCursorHome() {
			events.Picker.Cursor(m.list.Cursor)
		}
	case tea.KeyEnd:
		if m.list.MoveCursorEnd() {
			events.Picker.Cursor(m.list.Cursor)
		}
	case tea.KeyDelete:
		return m.removeCursorCmd()
	default:
		return nil
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}

func (m *Model) handleTextInput(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.String() {
	case "ctrl+u":
		if m.list.Filter == "" {
			return false, nil
		}
		before := m.list.FilterCursorPos()
		m.list.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared()
		m.list.EnsureCursorVisible(m.maxVisibleItems())
		return true, nil
	case "ctrl+w":
		before := m.list.FilterCursorPos()
		if !m.list.DeleteFilterWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.WordBackspace(m.list.Filter)
		m.list.EnsureCursorVisible(m.maxVisibleItems())
		return true, nil
	case "ctrl+a":
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorStart() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.FilterCursor)
		return true, nil
	case "ctrl+e":
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorEnd() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.FilterCursor)
		return true, nil
	}
	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.removeFilterRune() {
			return true, nil
		}
		return false, nil
	case tea.KeyRunes:
		if key.Alt {
			return false, nil
		}
		if len(key.Runes) == 0 {
			return false, nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
			if unicode.IsSpace(r) {
				// the dedicated space handler manages spaces
				return false, nil
			}
		}
		if m.appendToFilter(string(key.Runes)) {
			return true, nil
		}
		return false, nil
	case tea.KeySpace:
		if m.appendToFilter(" ") {
			return true, nil
		}
		return false, nil
	case tea.KeyLeft:
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorRuneBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.FilterCursor)
		return true, nil
	case tea.KeyRight:
		before := m.list.FilterCursorPos()
		if !m.list.MoveFilterCursorRuneForward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.FilterCursor)
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	before := m.list.FilterCursorPos()
	if !m.list.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(m.list.Filter)
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.list.FilterCursorPos()
	if !m.list.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(m.list.Filter)
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Filter
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.list.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
