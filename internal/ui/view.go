package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/format/table"
	"github.com/typeflow/font-picker/internal/picker"
	uistate "github.com/typeflow/font-picker/internal/ui/state"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	m.hitRows = map[int]string{}
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: "font family", style: styles.Header})
	m.hitRows[len(lines)] = m.picker.ButtonID()
	lines = append(lines, m.buttonLine())

	if m.picker.Expanded() {
		m.list.EnsureCursorVisible(m.maxVisibleItems())
		start := 0
		displayItems := m.list.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = m.list.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				m.list.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(m.list.Items) == 0 {
			msg := "(no fonts)"
			if m.list.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", m.list.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for i, item := range displayItems {
				idx := start + i
				m.hitRows[len(lines)] = item.ID
				lines = append(lines, m.buildItemLine(item, idx, m.width))
			}
		}
		lines = append(lines, m.previewLines()...)
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		footer := "enter open  q quit"
		if m.picker.Expanded() {
			footer = "↑/↓ move  enter select  del remove  esc close  ctrl+c quit"
		}
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footer, style: styles.Footer})
	}

	// Reserve 2 rows for the bottom bar (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)
	for row := range m.hitRows {
		if row >= len(lines) {
			delete(m.hitRows, row)
		}
	}

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText := ""
	if m.picker.Expanded() {
		promptText = m.filterPrompt()
	}
	bottomLines := []styledLine{
		statusLine,
		{text: promptText, raw: promptText != ""},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// buttonLine renders the dropdown button row: chevron, family label, and
// the status glyph for the catalog fetch.
func (m *Model) buttonLine() styledLine {
	chevron := "▸"
	if m.picker.Expanded() {
		chevron = "▾"
	}
	label := m.picker.Label()
	if label == "" {
		label = "(no font selected)"
	}
	var status string
	switch m.picker.Status() {
	case picker.StatusLoading:
		status = m.spin.View()
	case picker.StatusFinished:
		status = styles.StatusFinished.Render("✓")
	case picker.StatusError:
		status = styles.StatusError.Render("✗")
	}
	text := styles.DropdownChevron.Render(chevron) + " " + styles.DropdownLabel.Render(label)
	if status != "" {
		text += " " + status
	}
	return styledLine{text: text, raw: true}
}

// buildItemLine constructs a single styledLine for a list entry. width pads
// the text so the cursor background spans the full container.
func (m *Model) buildItemLine(item uistate.Item, idx, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	activeMark := ""
	if highlighted, ok := m.picker.Highlighted(); ok && highlighted == item.Label {
		lineStyle = styles.ActiveItem
		activeMark = " ●"
	}
	if idx == m.list.Cursor {
		indicatorStyle = styles.CursorIndicator
		lineStyle = styles.CursorItem
	}
	fullText := indicator + " " + item.Label + activeMark
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// previewLines renders the metadata block for the cursored font.
func (m *Model) previewLines() []styledLine {
	font, ok := m.cursorFont()
	if !ok {
		return nil
	}
	pairs := make([][2]string, 0, 3)
	if font.Category != "" {
		pairs = append(pairs, [2]string{"category", font.Category})
	}
	if len(font.Scripts) > 0 {
		pairs = append(pairs, [2]string{"scripts", strings.Join(font.Scripts, ", ")})
	}
	if len(font.Variants) > 0 {
		pairs = append(pairs, [2]string{"variants", strings.Join(font.Variants, ", ")})
	}
	if len(pairs) == 0 {
		return nil
	}
	out := make([]styledLine, 0, len(pairs)+2)
	out = append(out, styledLine{})
	out = append(out, styledLine{text: "Details: " + font.Family, style: styles.PreviewTitle})
	for _, row := range table.Pairs(pairs) {
		out = append(out, styledLine{text: "  " + row, style: styles.PreviewBody})
	}
	return out
}

func (m *Model) cursorFont() (catalog.Font, bool) {
	if !m.picker.Expanded() {
		return catalog.Font{}, false
	}
	item, ok := m.list.CursorItem()
	if !ok {
		return catalog.Font{}, false
	}
	return m.picker.Fonts().Get(item.Label)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	used += 2 // header + dropdown button
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	used += len(m.previewLines())
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
