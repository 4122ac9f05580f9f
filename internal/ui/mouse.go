package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typeflow/font-picker/internal/ui/command"
)

// handleMouseMsg resolves a left press to the element rendered on that row
// and dispatches an activation at it. A press on no element dispatches at
// the document root, which the dismissal listener treats as outside.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	id := m.hitRows[mouse.Y]
	if id == "" {
		m.doc.DispatchActivation(nil)
		m.syncAfterToggle()
		return nil
	}
	node := m.doc.GetElementByID(id)
	if node == nil {
		return nil
	}
	if id == m.picker.ButtonID() {
		m.doc.DispatchActivation(node)
		m.syncAfterToggle()
		return nil
	}
	family := node.Text()
	cmd := m.bus.Execute(command.Request{
		ID:    "font.activate",
		Label: family,
		Info:  "Activated " + family,
		Run: func() error {
			m.doc.DispatchActivation(node)
			return nil
		},
	})
	m.syncAfterToggle()
	return cmd
}
