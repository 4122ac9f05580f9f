package picker

import (
	"testing"

	"github.com/typeflow/font-picker/internal/dom"
)

func newDismissalFixture() (*dom.Document, *dom.Node, *dom.Node, *Dismissal) {
	doc := dom.NewDocument()
	root := doc.CreateElement("font-picker")
	doc.Root().AppendChild(root)
	list := doc.CreateElement("font-list")
	root.AppendChild(list)
	return doc, root, list, NewDismissal(doc, root, list)
}

func TestDismissalStartsCollapsed(t *testing.T) {
	doc, _, list, d := newDismissalFixture()
	if d.Expanded() {
		t.Fatalf("expected initial state to be collapsed")
	}
	if list.HasClass("expanded") {
		t.Fatalf("expected list to start without the expanded class")
	}
	if doc.ListenerCount() != 0 {
		t.Fatalf("expected no activation listeners while collapsed, got %d", doc.ListenerCount())
	}
}

func TestToggleAcquiresAndReleasesListener(t *testing.T) {
	doc, _, list, d := newDismissalFixture()

	d.Toggle()
	if !d.Expanded() {
		t.Fatalf("expected expanded after first toggle")
	}
	if !list.HasClass("expanded") {
		t.Fatalf("expected list to carry the expanded class")
	}
	if doc.ListenerCount() != 1 {
		t.Fatalf("expected exactly one activation listener while expanded, got %d", doc.ListenerCount())
	}

	d.Toggle()
	if d.Expanded() {
		t.Fatalf("expected collapsed after second toggle")
	}
	if list.HasClass("expanded") {
		t.Fatalf("expected expanded class to be removed")
	}
	if doc.ListenerCount() != 0 {
		t.Fatalf("expected the listener to be released on collapse, got %d", doc.ListenerCount())
	}
}

func TestToggleCyclesDoNotLeakListeners(t *testing.T) {
	doc, _, _, d := newDismissalFixture()
	for i := 0; i < 5; i++ {
		d.Toggle()
		d.Toggle()
	}
	if doc.ListenerCount() != 0 {
		t.Fatalf("expected zero listeners after balanced toggles, got %d", doc.ListenerCount())
	}
}

func TestOutsideActivationCollapses(t *testing.T) {
	doc, _, _, d := newDismissalFixture()
	outside := doc.CreateElement("elsewhere")
	doc.Root().AppendChild(outside)

	d.Toggle()
	doc.DispatchActivation(outside)

	if d.Expanded() {
		t.Fatalf("expected outside activation to collapse the dropdown")
	}
	if doc.ListenerCount() != 0 {
		t.Fatalf("expected listener release after outside collapse, got %d", doc.ListenerCount())
	}
}

func TestInsideActivationDoesNotCollapse(t *testing.T) {
	doc, _, list, d := newDismissalFixture()
	entry := doc.CreateElement("font-button-lato")
	list.AppendChild(entry)

	d.Toggle()
	doc.DispatchActivation(entry)

	if !d.Expanded() {
		t.Fatalf("expected inside activation to leave the dropdown expanded")
	}
}

func TestRootActivationCountsAsInside(t *testing.T) {
	doc, root, _, d := newDismissalFixture()

	d.Toggle()
	doc.DispatchActivation(root)

	if !d.Expanded() {
		t.Fatalf("expected activation on the picker root to count as inside")
	}
}

func TestActivationWhileCollapsedIsIgnored(t *testing.T) {
	doc, _, _, d := newDismissalFixture()
	outside := doc.CreateElement("elsewhere")
	doc.Root().AppendChild(outside)

	doc.DispatchActivation(outside)

	if d.Expanded() {
		t.Fatalf("expected collapsed state to survive outside activation")
	}
}
