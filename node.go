package cardtable

// Node is an element of the entity tree the drag controller walks to find a
// drag's container and its drop targets. Nodes carry identity and role only;
// geometry lives in the RectCache under the node's ID.
type Node struct {
	ID    string
	Flags NodeFlags

	// Highlighted is set while a dragged entity overlaps this drop target.
	Highlighted bool

	Parent   *Node
	children []*Node
}

// NewNode creates a detached node.
func NewNode(id string, flags NodeFlags) *Node {
	return &Node{ID: id, Flags: flags}
}

// Is reports whether every bit of flag is set on n.
func (n *Node) Is(flag NodeFlags) bool {
	return n.Flags&flag == flag
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("cardtable: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("cardtable: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("cardtable: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// FindAncestor returns the nearest proper ancestor carrying flag, or nil.
func (n *Node) FindAncestor(flag NodeFlags) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Is(flag) {
			return p
		}
	}
	return nil
}

// Collect appends every descendant of n carrying flag to buf, depth first in
// child order, and returns the extended slice. n itself is not considered.
func (n *Node) Collect(flag NodeFlags, buf []*Node) []*Node {
	for _, c := range n.children {
		if c.Is(flag) {
			buf = append(buf, c)
		}
		buf = c.Collect(flag, buf)
	}
	return buf
}

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
