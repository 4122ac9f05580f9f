package picker

import (
	"github.com/typeflow/font-picker/internal/dom"
	"github.com/typeflow/font-picker/internal/logging/events"
)

const classExpanded = "expanded"

// Dismissal is the expand/collapse state machine. The document-wide
// activation listener is a scoped resource: it is acquired inside the
// Collapsed→Expanded transition and released inside Expanded→Collapsed, so
// no transition path can leak or double-register it.
type Dismissal struct {
	doc  *dom.Document
	root *dom.Node
	list *dom.Node

	expanded bool
	handle   dom.ListenerHandle
}

// NewDismissal starts in the Collapsed state.
func NewDismissal(doc *dom.Document, root, list *dom.Node) *Dismissal {
	return &Dismissal{doc: doc, root: root, list: list}
}

// Expanded reports the current state.
func (d *Dismissal) Expanded() bool {
	return d.expanded
}

// Toggle flips the state. Expanding reveals the list and registers the
// document-wide activation listener; collapsing hides the list and
// releases it.
func (d *Dismissal) Toggle() {
	if d.expanded {
		d.list.RemoveClass(classExpanded)
		d.doc.RemoveActivationListener(d.handle)
		d.handle = 0
		d.expanded = false
		events.Dismiss.Collapse()
		return
	}
	d.list.AddClass(classExpanded)
	d.handle = d.doc.AddActivationListener(d.onDocumentActivation)
	d.expanded = true
	events.Dismiss.Expand()
}

// onDocumentActivation walks the ancestor chain from the activation target.
// Meeting the picker root (inclusive) means the activation originated inside
// the widget and is ignored; exhausting the walk means it was outside and
// collapses the dropdown.
func (d *Dismissal) onDocumentActivation(target *dom.Node) {
	if !d.expanded {
		return
	}
	for n := target; n != nil; n = n.Parent() {
		if n == d.root {
			return
		}
	}
	events.Dismiss.OutsideActivation(target.ID())
	d.Toggle()
}
