// Package picker implements the font dropdown widget: the list renderer,
// the dismissal state machine, and the facade that keeps the rendered tree
// and the catalog service consistent.
package picker

import (
	"context"

	"github.com/typeflow/font-picker/internal/catalog"
	"github.com/typeflow/font-picker/internal/dom"
	"github.com/typeflow/font-picker/internal/logging"
	"github.com/typeflow/font-picker/internal/logging/events"
)

// Status icon classes, exactly one of which is set at a time.
const (
	StatusLoading  = "loading"
	StatusFinished = "finished"
	StatusError    = "error"
)

// Config carries the presentation options the facade owns. Everything
// model-related (allow-lists, default family, callbacks) belongs to the
// catalog service.
type Config struct {
	Sort SortOrder
}

// Picker is the widget facade. Model truth lives in the catalog service;
// the picker keeps the rendered tree synchronized with it.
type Picker struct {
	doc *dom.Document
	svc catalog.Service
	cfg Config

	suffix    string
	container *dom.Node
	button    *dom.Node
	label     *dom.Node
	icon      *dom.Node
	listNode  *dom.Node

	list      *List
	dismissal *Dismissal

	loaded bool
}

// New builds the dropdown button and list under the container element
// "font-picker<suffix>". A missing container is fatal: the error is
// returned synchronously and no partial tree is created.
func New(doc *dom.Document, cfg Config, svc catalog.Service) (*Picker, error) {
	suffix := svc.SelectorSuffix()
	containerID := "font-picker" + suffix
	container := doc.GetElementByID(containerID)
	if container == nil {
		return nil, MissingContainerError{ContainerID: containerID}
	}

	p := &Picker{doc: doc, svc: svc, cfg: cfg, suffix: suffix, container: container}

	p.button = doc.CreateElement("dropdown-button" + suffix)
	p.label = doc.CreateElement("dropdown-font-family" + suffix)
	p.icon = doc.CreateElement("dropdown-icon" + suffix)
	p.icon.AddClass(StatusLoading)
	p.button.AppendChild(p.label)
	p.button.AppendChild(p.icon)
	container.AppendChild(p.button)

	p.listNode = doc.CreateElement("font-list" + suffix)
	container.AppendChild(p.listNode)

	p.dismissal = NewDismissal(doc, container, p.listNode)
	p.list = NewList(doc, p.listNode, suffix, p.activateEntry)
	p.button.OnActivate(p.dismissal.Toggle)

	if active, ok := svc.ActiveFont(); ok {
		p.label.SetText(active.Family)
	}

	return p, nil
}

// Bootstrap awaits the catalog's initialization and applies the outcome.
// Fetch failures are absorbed: the status icon flips to error, the failure
// is logged, and nothing propagates.
func (p *Picker) Bootstrap(ctx context.Context) {
	list, err := p.svc.Init(ctx)
	p.ApplyFetch(list, err)
}

// ApplyFetch applies an already-completed fetch outcome. Split from
// Bootstrap so an event loop can run the fetch elsewhere and hand the
// result in.
func (p *Picker) ApplyFetch(list *catalog.FontList, err error) {
	if err != nil {
		p.setStatus(StatusError)
		logging.Error(CatalogFetchError{Err: err})
		return
	}
	fonts := list.Fonts()
	sortFonts(fonts, p.cfg.Sort)
	active := ""
	if f, ok := p.svc.ActiveFont(); ok {
		active = f.Family
	}
	p.list.Render(fonts, active)
	p.label.SetText(active)
	p.setStatus(StatusFinished)
	p.loaded = true
}

// AddFont registers the family with the catalog and appends its entry.
func (p *Picker) AddFont(family string) error {
	return p.AddFontAt(family, -1)
}

// AddFontAt registers the family and inserts its entry at index (out of
// bounds appends). A family already present in the catalog fails with
// DuplicateFontError before any mutation.
func (p *Picker) AddFontAt(family string, index int) error {
	if p.svc.Fonts().Has(family) {
		return DuplicateFontError{Family: family}
	}
	p.svc.AddFont(family, true)
	font, ok := p.svc.Fonts().Get(family)
	if !ok {
		font = catalog.Font{Family: family}
	}
	p.list.InsertEntry(font, index)
	return nil
}

// RemoveFont drops the family from the catalog, then removes its rendered
// entry. A missing entry after initial load surfaces EntryNotFoundError;
// before initial load it is the benign first-load race and is absorbed.
func (p *Picker) RemoveFont(family string) error {
	p.svc.RemoveFont(family)
	err := p.list.RemoveEntry(family)
	if err != nil && !p.loaded {
		return nil
	}
	return err
}

// SetActiveFont records the family as active in the catalog, updates the
// dropdown label synchronously, and moves the highlight.
func (p *Picker) SetActiveFont(family string) {
	events.Picker.Activate(family)
	p.svc.SetActiveFont(family)
	p.label.SetText(family)
	p.list.SetHighlighted(family)
}

// Fonts is a pass-through read of the catalog.
func (p *Picker) Fonts() *catalog.FontList {
	return p.svc.Fonts()
}

// ActiveFont is a pass-through read of the catalog.
func (p *Picker) ActiveFont() (catalog.Font, bool) {
	return p.svc.ActiveFont()
}

// Toggle flips the expand/collapse state.
func (p *Picker) Toggle() {
	p.dismissal.Toggle()
}

// Expanded reports whether the dropdown list is revealed.
func (p *Picker) Expanded() bool {
	return p.dismissal.Expanded()
}

// Loaded reports whether the initial catalog fetch has been applied.
func (p *Picker) Loaded() bool {
	return p.loaded
}

// Label returns the dropdown label text.
func (p *Picker) Label() string {
	return p.label.Text()
}

// Status returns the current status icon class.
func (p *Picker) Status() string {
	for _, s := range []string{StatusLoading, StatusFinished, StatusError} {
		if p.icon.HasClass(s) {
			return s
		}
	}
	return ""
}

// Families returns the rendered families in display order.
func (p *Picker) Families() []string {
	return p.list.Families()
}

// Highlighted returns the highlighted family, if any.
func (p *Picker) Highlighted() (string, bool) {
	return p.list.Highlighted()
}

// ContainerID returns the id of the container element.
func (p *Picker) ContainerID() string {
	return "font-picker" + p.suffix
}

// ButtonID returns the id of the dropdown button element.
func (p *Picker) ButtonID() string {
	return "dropdown-button" + p.suffix
}

// EntryButtonID returns the id of the entry button for family.
func (p *Picker) EntryButtonID(family string) string {
	return p.list.ButtonID(family)
}

// activateEntry handles an entry activation: toggle first, so every user
// selection ends Collapsed, then mutate the model.
func (p *Picker) activateEntry(family string) {
	p.dismissal.Toggle()
	p.SetActiveFont(family)
}

func (p *Picker) setStatus(status string) {
	for _, s := range []string{StatusLoading, StatusFinished, StatusError} {
		p.icon.RemoveClass(s)
	}
	p.icon.AddClass(status)
}
