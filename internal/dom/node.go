package dom

// Node is one element of the picker's retained tree. Nodes carry an
// identifier, a class set, display text, and an optional activation handler.
// Structure mutations keep the owning document's id index current.
type Node struct {
	id       string
	classes  map[string]struct{}
	text     string
	parent   *Node
	children []*Node
	doc      *Document

	onActivate func()
}

// ID returns the node identifier. Empty for anonymous nodes.
func (n *Node) ID() string {
	return n.id
}

// Parent returns the parent node, or nil for a detached node or the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the child nodes in document order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Text returns the node's display text.
func (n *Node) Text() string {
	return n.text
}

// SetText replaces the node's display text.
func (n *Node) SetText(text string) {
	n.text = text
}

// OnActivate installs the handler invoked when an activation reaches the node.
func (n *Node) OnActivate(fn func()) {
	n.onActivate = fn
}

// AddClass adds a class to the node's class set.
func (n *Node) AddClass(class string) {
	if class == "" {
		return
	}
	if n.classes == nil {
		n.classes = make(map[string]struct{})
	}
	n.classes[class] = struct{}{}
}

// RemoveClass removes a class from the node's class set.
func (n *Node) RemoveClass(class string) {
	delete(n.classes, class)
}

// HasClass reports whether the node carries the class.
func (n *Node) HasClass(class string) bool {
	_, ok := n.classes[class]
	return ok
}

// AppendChild attaches child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.insertAt(child, len(n.children))
}

// InsertBefore attaches child immediately before ref. When ref is nil or not
// a child of n, the child is appended.
func (n *Node) InsertBefore(child, ref *Node) {
	idx := len(n.children)
	if ref != nil {
		for i, c := range n.children {
			if c == ref {
				idx = i
				break
			}
		}
	}
	n.insertAt(child, idx)
}

// InsertAt attaches child at the given position. Out-of-range positions
// append.
func (n *Node) InsertAt(child *Node, index int) {
	n.insertAt(child, index)
}

func (n *Node) insertAt(child *Node, index int) {
	if child == nil || child == n {
		return
	}
	if child.parent == n {
		// Moving within the same parent: removal shifts later slots left.
		for i, c := range n.children {
			if c == child {
				if i < index {
					index--
				}
				break
			}
		}
	}
	child.Remove()
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if n.doc != nil {
		n.doc.adopt(child)
	}
}

// Remove detaches the node (and its subtree) from its parent and the
// document's id index. A detached node can be re-inserted.
func (n *Node) Remove() {
	if n.parent != nil {
		siblings := n.parent.children
		for i, c := range siblings {
			if c == n {
				n.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
	if n.doc != nil {
		n.doc.release(n)
	}
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}
