// Package ui implements the Bubble Tea model for the font picker. The
// rendered tree owned by the picker facade stays authoritative; the model
// layers cursor, filter, and viewport presentation state on top of it and
// translates key and mouse input into activations.
package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typeflow/font-picker/internal/backend"
	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/data/dispatcher"
	"github.com/typeflow/font-picker/internal/dom"
	"github.com/typeflow/font-picker/internal/logging/events"
	"github.com/typeflow/font-picker/internal/picker"
	"github.com/typeflow/font-picker/internal/theme"
	"github.com/typeflow/font-picker/internal/ui/command"
	uistate "github.com/typeflow/font-picker/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the dropdown.
type Model struct {
	doc    *dom.Document
	picker *picker.Picker
	svc    catalog.Service

	fetcher    *backend.Fetcher
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	list *uistate.List

	filterCursor      cursor.Model
	filterCursorDirty bool
	spin              spinner.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler

	// hitRows maps rendered screen rows to element ids, rebuilt on every
	// View so mouse presses resolve to activation targets.
	hitRows map[int]string
}

// NewModel initialises the UI state around an already constructed picker.
func NewModel(doc *dom.Document, p *picker.Picker, svc catalog.Service, fetcher *backend.Fetcher, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		doc:        doc,
		picker:     p,
		svc:        svc,
		fetcher:    fetcher,
		dispatcher: dispatcher.New(p),
		bus:        command.New(),
		list:       uistate.NewList(nil),
		showFooter: showFooter,
		verbose:    verbose,
		hitRows:    map[int]string{},
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	if styles.StatusLoading != nil {
		s.Style = *styles.StatusLoading
	}
	m.spin = s

	m.refreshItems()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.fetcher != nil {
		cmds = append(cmds, waitForFetchEvent(m.fetcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):         m.handleMouseMsg,
		reflect.TypeOf(fetchEventMsg{}):        m.handleFetchEventMsg,
		reflect.TypeOf(fetchDoneMsg{}):         m.handleFetchDoneMsg,
		reflect.TypeOf(spinner.TickMsg{}):      m.handleSpinnerTickMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// refreshItems rebuilds the item list from the rendered entries. The cursor
// survives when still valid; the filter is re-applied over the new set.
func (m *Model) refreshItems() {
	families := m.picker.Families()
	items := make([]uistate.Item, len(families))
	for i, family := range families {
		items[i] = uistate.Item{ID: m.picker.EntryButtonID(family), Label: family}
	}
	m.list.UpdateItems(items)
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// syncAfterToggle reconciles presentation state after an activation that may
// have flipped the expand state: an opening dropdown places the cursor on
// the active font, a closing one drops the filter.
func (m *Model) syncAfterToggle() {
	if m.picker.Expanded() {
		if active, ok := m.picker.ActiveFont(); ok {
			m.list.MoveCursorTo(active.Family)
		}
		m.list.EnsureCursorVisible(m.maxVisibleItems())
		return
	}
	if m.list.Filter != "" {
		m.list.SetFilter("", 0)
		events.Filter.Cleared()
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
