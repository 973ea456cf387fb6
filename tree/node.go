package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/rc"
)

// NodeID is the interface ID of Node.
const NodeID iface.ID = 1

// Ref is a generational reference to a node of an arena.
// The zero Ref refers to no node.
type Ref struct {
	index uint32 // slot in the arena
	gen   uint32 // generation of the slot; 0 is never in use
}

// IsNil is true for the zero Ref.
func (r Ref) IsNil() bool {
	return r.gen == 0
}

func (r Ref) String() string {
	if r.IsNil() {
		return "-"
	}
	return fmt.Sprintf("%d.%d", r.index, r.gen)
}

// Node is the root interface of the tree. Concrete node types embed Node
// as their first field.
type Node struct {
	iface.Object
	arena       *Arena // owning arena; nil after removal
	self        Ref    // this node's slot
	parent      Ref
	firstChild  Ref
	lastChild   Ref
	prevSibling Ref
	nextSibling Ref
}

// InterfaceID is part of interface iface.Interface.
func (*Node) InterfaceID() iface.ID {
	return NodeID
}

// AsNode returns the Node of a concrete node type, i.e. up-casts to Node.
// Concrete node types inherit this method from their embedded Node.
func (n *Node) AsNode() *Node {
	return n
}

// Arena returns the arena owning n, or nil if n has been removed.
func (n *Node) Arena() *Arena {
	return n.arena
}

// Ref returns the reference of n within its arena.
func (n *Node) Ref() Ref {
	return n.self
}

// Handle returns a new owning handle to n. The handle shares n's block
// with all other handles of the node and has to be released by the caller.
func (n *Node) Handle() rc.Handle[Node] {
	assertThat(n.arena != nil, "cannot hand out handle for removed node")
	return rc.FromInterior(n)
}

// Parent returns the parent node or nil (for detached and root nodes).
func (n *Node) Parent() *Node {
	return n.arena.resolve(n.parent)
}

// FirstChild returns the first child node or nil.
func (n *Node) FirstChild() *Node {
	return n.arena.resolve(n.firstChild)
}

// LastChild returns the last child node or nil.
func (n *Node) LastChild() *Node {
	return n.arena.resolve(n.lastChild)
}

// PreviousSibling returns the previous sibling or nil.
func (n *Node) PreviousSibling() *Node {
	return n.arena.resolve(n.prevSibling)
}

// NextSibling returns the next sibling or nil.
func (n *Node) NextSibling() *Node {
	return n.arena.resolve(n.nextSibling)
}

// HasChildNodes is true if n has at least one child.
func (n *Node) HasChildNodes() bool {
	return !n.firstChild.IsNil()
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	cnt := 0
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		cnt++
	}
	return cnt
}

// Children returns a slice with all children of n, in sibling order.
func (n *Node) Children() []*Node {
	var children []*Node
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		children = append(children, ch)
	}
	return children
}

// IndexOfChild returns the position of ch within the children of n,
// or -1 if ch is not a child of n.
func (n *Node) IndexOfChild(ch *Node) int {
	i := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c == ch {
			return i
		}
		i++
	}
	return -1
}

// IsDetached is true if n has neither a parent nor siblings.
func (n *Node) IsDetached() bool {
	return n.parent.IsNil() && n.prevSibling.IsNil() && n.nextSibling.IsNil()
}

// Contains is true if other is n or one of n's descendants.
// The walk from other upwards is bounded by the number of nodes in the arena.
func (n *Node) Contains(other *Node) bool {
	limit := 1
	if other != nil && other.arena != nil {
		limit += other.arena.live
	}
	for ; other != nil && limit > 0; other = other.Parent() {
		if other == n {
			return true
		}
		limit--
	}
	return false
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node %s top=%s #ch=%d)", n.self, n.TopID(), n.ChildCount())
}
