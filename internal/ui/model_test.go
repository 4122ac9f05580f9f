package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeflow/font-picker/internal/backend"
	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/dom"
	"github.com/typeflow/font-picker/internal/picker"
	"github.com/typeflow/font-picker/internal/state"
	"github.com/typeflow/font-picker/internal/testutil"
	"github.com/typeflow/font-picker/internal/ui/command"
)

type uiFixture struct {
	doc   *dom.Document
	svc   catalog.Service
	pick  *picker.Picker
	model *Model
}

// newUIFixture builds a model over a three-font catalog with Open Sans
// active, fetched and applied.
func newUIFixture(t *testing.T) *uiFixture {
	t.Helper()
	doc := dom.NewDocument()
	container := doc.CreateElement("font-picker")
	doc.Root().AppendChild(container)

	svc := catalog.NewLibrary(state.NewFontStore(), catalog.Options{
		Families:      []string{"Roboto", "Open Sans", "Lato"},
		DefaultFamily: "Open Sans",
	})
	p, err := picker.New(doc, picker.Config{}, svc)
	require.NoError(t, err)

	m := NewModel(doc, p, svc, nil, 80, 24, true, true)

	list, err := svc.Init(context.Background())
	require.NoError(t, err)
	m.Update(fetchEventMsg{event: backend.Event{List: list}})

	return &uiFixture{doc: doc, svc: svc, pick: p, model: m}
}

func (f *uiFixture) key(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := f.model.Update(msg)
	return cmd
}

// drain runs the returned command and feeds any ActionResult back in, the
// way the Bubble Tea runtime would.
func (f *uiFixture) drain(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		if result, ok := msg.(command.ActionResult); ok {
			f.model.Update(result)
		}
	}
}

func TestFetchEventRendersList(t *testing.T) {
	f := newUIFixture(t)

	assert.True(t, f.pick.Loaded())
	assert.Equal(t, picker.StatusFinished, f.pick.Status())
	// Alphabet order is the default.
	assert.Equal(t, []string{"Lato", "Open Sans", "Roboto"}, f.pick.Families())
	item, ok := f.model.list.CursorItem()
	require.True(t, ok)
	assert.Equal(t, "Open Sans", item.Label, "cursor starts on the active font")
}

func TestFetchErrorSurfacesInStatusLine(t *testing.T) {
	doc := dom.NewDocument()
	container := doc.CreateElement("font-picker")
	doc.Root().AppendChild(container)
	svc := catalog.NewLibrary(state.NewFontStore(), catalog.Options{})
	p, err := picker.New(doc, picker.Config{}, svc)
	require.NoError(t, err)
	m := NewModel(doc, p, svc, nil, 80, 24, false, false)

	m.Update(fetchEventMsg{event: backend.Event{Err: errors.New("offline")}})

	assert.Equal(t, picker.StatusError, p.Status())
	assert.NotEmpty(t, m.errMsg)
	assert.Contains(t, testutil.StripANSI(m.View()), "Error:")
}

func TestEnterTogglesDropdown(t *testing.T) {
	f := newUIFixture(t)

	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, f.pick.Expanded())

	f.key(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.pick.Expanded())
}

func TestEnterSelectsCursorFont(t *testing.T) {
	f := newUIFixture(t)

	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, f.pick.Expanded())

	f.key(t, tea.KeyMsg{Type: tea.KeyDown})
	cmd := f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.drain(t, cmd)

	assert.False(t, f.pick.Expanded(), "selection collapses the dropdown")
	assert.Equal(t, "Roboto", f.pick.Label())
	hl, ok := f.pick.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "Roboto", hl)
}

func TestFilterNarrowsEntries(t *testing.T) {
	f := newUIFixture(t)
	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})

	for _, r := range "lato" {
		f.key(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "lato", f.model.list.Filter)
	require.Len(t, f.model.list.Items, 1)
	assert.Equal(t, "Lato", f.model.list.Items[0].Label)

	// Collapsing drops the filter.
	f.key(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, f.model.list.Filter)
}

func TestDeleteRemovesCursorFont(t *testing.T) {
	f := newUIFixture(t)
	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})

	f.key(t, tea.KeyMsg{Type: tea.KeyHome})
	cmd := f.key(t, tea.KeyMsg{Type: tea.KeyDelete})
	f.drain(t, cmd)

	assert.Equal(t, []string{"Open Sans", "Roboto"}, f.pick.Families())
	assert.False(t, f.svc.Fonts().Has("Lato"))
}

func TestViewListsEntriesWhenExpanded(t *testing.T) {
	f := newUIFixture(t)

	collapsed := testutil.StripANSI(f.model.View())
	assert.Contains(t, collapsed, "Open Sans")
	assert.NotContains(t, collapsed, "Lato")

	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	expanded := testutil.StripANSI(f.model.View())
	for _, family := range []string{"Lato", "Open Sans", "Roboto"} {
		assert.Contains(t, expanded, family)
	}
	assert.Contains(t, expanded, "Details: Open Sans")
}

func TestMouseOnButtonToggles(t *testing.T) {
	f := newUIFixture(t)
	f.model.View()

	buttonRow := -1
	for row, id := range f.model.hitRows {
		if id == f.pick.ButtonID() {
			buttonRow = row
		}
	}
	require.GreaterOrEqual(t, buttonRow, 0, "button row must be hit-mapped")

	f.model.Update(tea.MouseMsg{Y: buttonRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, f.pick.Expanded())
}

func TestMouseOnEntrySelects(t *testing.T) {
	f := newUIFixture(t)
	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.model.View()

	entryRow := -1
	for row, id := range f.model.hitRows {
		if id == f.pick.EntryButtonID("Roboto") {
			entryRow = row
		}
	}
	require.GreaterOrEqual(t, entryRow, 0, "entry row must be hit-mapped")

	_, cmd := f.model.Update(tea.MouseMsg{Y: entryRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.drain(t, cmd)

	assert.False(t, f.pick.Expanded())
	assert.Equal(t, "Roboto", f.pick.Label())
}

func TestMouseOutsideCollapses(t *testing.T) {
	f := newUIFixture(t)
	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.model.View()

	f.model.Update(tea.MouseMsg{Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, f.pick.Expanded())
}

func TestMouseOutsideWhileCollapsedIsIgnored(t *testing.T) {
	f := newUIFixture(t)
	f.model.View()

	f.model.Update(tea.MouseMsg{Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, f.pick.Expanded())
	assert.Equal(t, "Open Sans", f.pick.Label())
}

func TestWindowSizeUpdatesUnfixedDimensions(t *testing.T) {
	doc := dom.NewDocument()
	container := doc.CreateElement("font-picker")
	doc.Root().AppendChild(container)
	svc := catalog.NewLibrary(state.NewFontStore(), catalog.Options{})
	p, err := picker.New(doc, picker.Config{}, svc)
	require.NoError(t, err)
	m := NewModel(doc, p, svc, nil, 0, 0, false, false)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestCtrlCQuits(t *testing.T) {
	f := newUIFixture(t)
	cmd := f.key(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestCollapsedEscQuits(t *testing.T) {
	f := newUIFixture(t)
	cmd := f.key(t, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestViewHonoursWidthLimit(t *testing.T) {
	f := newUIFixture(t)
	f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	for _, line := range strings.Split(testutil.StripANSI(f.model.View()), "\n") {
		if got := len([]rune(line)); got > 80 {
			t.Fatalf("line exceeds width limit: %d chars", got)
		}
	}
}
