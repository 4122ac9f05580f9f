package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typeflow/font-picker/internal/backend"
	"github.com/typeflow/font-picker/internal/picker"
	"github.com/typeflow/font-picker/internal/ui/command"
)

// fetchEventMsg carries the outcome of the one-shot catalog fetch.
type fetchEventMsg struct {
	event backend.Event
}

// fetchDoneMsg signals that the fetcher's event channel has closed.
type fetchDoneMsg struct{}

func waitForFetchEvent(f *backend.Fetcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-f.Events()
		if !ok {
			return fetchDoneMsg{}
		}
		return fetchEventMsg{event: evt}
	}
}

func (m *Model) handleFetchEventMsg(msg tea.Msg) tea.Cmd {
	evt, ok := msg.(fetchEventMsg)
	if !ok {
		return nil
	}
	result := m.dispatcher.Handle(evt.event)
	if result.FetchErr != nil {
		m.errMsg = "font catalog failed to load"
	} else {
		m.errMsg = ""
		m.refreshItems()
		if active, okActive := m.picker.ActiveFont(); okActive {
			m.list.MoveCursorTo(active.Family)
		}
		m.list.EnsureCursorVisible(m.maxVisibleItems())
	}
	if m.fetcher != nil {
		return waitForFetchEvent(m.fetcher)
	}
	return nil
}

func (m *Model) handleFetchDoneMsg(tea.Msg) tea.Cmd {
	m.fetcher = nil
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if m.picker.Status() != picker.StatusLoading {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(tick)
	return cmd
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	return nil
}

// activateCursorCmd routes the cursored entry through the activation path,
// so selection behaves exactly like a click on the entry button.
func (m *Model) activateCursorCmd() tea.Cmd {
	item, ok := m.list.CursorItem()
	if !ok {
		return nil
	}
	family := item.Label
	id := item.ID
	cmd := m.bus.Execute(command.Request{
		ID:    "font.activate",
		Label: family,
		Info:  "Activated " + family,
		Run: func() error {
			node := m.doc.GetElementByID(id)
			if node == nil {
				return picker.EntryNotFoundError{Family: family}
			}
			m.doc.DispatchActivation(node)
			return nil
		},
	})
	m.syncAfterToggle()
	return cmd
}

// removeCursorCmd drops the cursored font from the catalog and the list.
func (m *Model) removeCursorCmd() tea.Cmd {
	item, ok := m.list.CursorItem()
	if !ok {
		return nil
	}
	family := item.Label
	cmd := m.bus.Execute(command.Request{
		ID:    "font.remove",
		Label: family,
		Info:  "Removed " + family,
		Run: func() error {
			return m.picker.RemoveFont(family)
		},
	})
	m.refreshItems()
	return cmd
}
