// Package dom implements the retained element tree the picker renders into.
// It is deliberately small: identified nodes with classes and text, an id
// index per document, and document-wide activation listeners with explicit
// handles so acquisition and release can be paired with state transitions.
package dom

// ListenerHandle identifies a registered document-wide activation listener.
// The zero value never names a live listener.
type ListenerHandle int

// Document owns a node tree, its id index, and the document-wide activation
// listeners. All operations are single-goroutine, driven by the UI loop.
type Document struct {
	root *Node
	byID map[string]*Node

	nextHandle ListenerHandle
	listeners  map[ListenerHandle]func(target *Node)
	order      []ListenerHandle
}

// NewDocument creates an empty document with an anonymous root node.
func NewDocument() *Document {
	d := &Document{
		byID:      make(map[string]*Node),
		listeners: make(map[ListenerHandle]func(*Node)),
	}
	d.root = &Node{doc: d}
	return d
}

// Root returns the document root.
func (d *Document) Root() *Node {
	return d.root
}

// CreateElement returns a detached node owned by this document. Attach it
// with AppendChild/InsertBefore; its id becomes resolvable once attached.
func (d *Document) CreateElement(id string) *Node {
	return &Node{id: id, doc: d}
}

// GetElementByID resolves an attached node by id. Returns nil when no
// attached node carries the id.
func (d *Document) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	return d.byID[id]
}

// AddActivationListener registers a document-wide listener that observes
// every activation before target handlers run. The returned handle releases
// it via RemoveActivationListener.
func (d *Document) AddActivationListener(fn func(target *Node)) ListenerHandle {
	if fn == nil {
		return 0
	}
	d.nextHandle++
	h := d.nextHandle
	d.listeners[h] = fn
	d.order = append(d.order, h)
	return h
}

// RemoveActivationListener releases a listener. Unknown handles are ignored.
func (d *Document) RemoveActivationListener(h ListenerHandle) {
	if _, ok := d.listeners[h]; !ok {
		return
	}
	delete(d.listeners, h)
	for i, existing := range d.order {
		if existing == h {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// ListenerCount reports the number of registered document-wide listeners.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// DispatchActivation delivers an activation targeting the given node:
// document-wide listeners first (registration order), then the activation
// handlers of the target and its ancestors, innermost first. A nil target
// is delivered to the root.
func (d *Document) DispatchActivation(target *Node) {
	if target == nil {
		target = d.root
	}
	// Snapshot so listeners removed mid-dispatch (dismissal releasing
	// itself) are still consistent for this event.
	handles := make([]ListenerHandle, len(d.order))
	copy(handles, d.order)
	for _, h := range handles {
		if fn, ok := d.listeners[h]; ok {
			fn(target)
		}
	}
	for cur := target; cur != nil; cur = cur.parent {
		if cur.onActivate != nil {
			cur.onActivate()
		}
	}
}

func (d *Document) adopt(n *Node) {
	n.walk(func(node *Node) {
		node.doc = d
		if node.id != "" {
			d.byID[node.id] = node
		}
	})
}

func (d *Document) release(n *Node) {
	n.walk(func(node *Node) {
		if node.id != "" && d.byID[node.id] == node {
			delete(d.byID, node.id)
		}
	})
}
