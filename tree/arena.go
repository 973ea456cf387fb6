package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/rc"
)

// ErrNotANode is returned when creating a node of an interface which does not inherit from Node.
var ErrNotANode = errors.New("interface does not inherit from Node")

// slot holds a node of the arena. The arena owns one count of the node's block.
type slot struct {
	gen   uint32
	owner rc.Handle[Node]
}

// Arena owns the nodes of a tree (or of several trees). Nodes are addressed
// by generational references, which become invalid when a node is removed.
type Arena struct {
	reg   *iface.Registry
	slots []slot
	free  []uint32 // indices of unused slots
	live  int      // number of nodes in the arena
}

// Option configures an arena.
type Option func(*Arena)

// Capacity pre-allocates room for n nodes.
func Capacity(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.slots = make([]slot, 0, n)
		}
	}
}

// NewArena creates an arena for nodes whose interfaces are registered with reg.
// reg has to be sealed before nodes are created.
func NewArena(reg *iface.Registry, opts ...Option) *Arena {
	assertThat(reg != nil, "arena needs an interface registry")
	a := &Arena{reg: reg}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry returns the interface registry of the arena.
func (a *Arena) Registry() *iface.Registry {
	return a.reg
}

// Len returns the number of nodes living in the arena.
func (a *Arena) Len() int {
	return a.live
}

// NodeType is a constraint for pointers to concrete node types.
type NodeType[T any] interface {
	iface.Ptr[T]
	AsNode() *Node
}

// Create allocates a new node of interface T in arena a and returns an owning
// handle for it. T has to be registered with the arena's registry and has to
// inherit from Node. The node starts out detached.
func Create[T any, PT NodeType[T]](a *Arena) (rc.Handle[T], error) {
	id := iface.IDOf[T, PT]()
	isNode, err := a.reg.IsAncestor(id, NodeID)
	if err != nil {
		return rc.Handle[T]{}, err
	}
	if !isNode {
		return rc.Handle[T]{}, fmt.Errorf("%w: %s", ErrNotANode, a.reg.Name(id))
	}
	if err := iface.CheckLayout[T](); err != nil {
		return rc.Handle[T]{}, err
	}
	var zero T
	h := rc.New(zero)
	p := PT(h.Get())
	node := p.AsNode()
	if unsafe.Pointer(node) != unsafe.Pointer(p) {
		h.Release()
		return rc.Handle[T]{}, fmt.Errorf("%w: Node is not the leading field of %s",
			iface.ErrLayout, a.reg.Name(id))
	}
	iface.Stamp[T, PT](p)
	a.adopt(node)
	tracer().Debugf("created %s node %s", a.reg.Name(id), node.self)
	return h, nil
}

// adopt puts n into a free slot. The slot takes a count on n's block.
func (a *Arena) adopt(n *Node) {
	var index uint32
	if l := len(a.free); l > 0 {
		index = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		a.slots = append(a.slots, slot{})
		index = uint32(len(a.slots) - 1)
	}
	s := &a.slots[index]
	s.gen++
	if s.gen == 0 { // wrapped around
		s.gen = 1
	}
	s.owner = rc.FromInterior(n)
	n.arena = a
	n.self = Ref{index: index, gen: s.gen}
	a.live++
}

// Resolve returns the node referenced by r, or nil if r is nil or stale.
func (a *Arena) Resolve(r Ref) *Node {
	return a.resolve(r)
}

func (a *Arena) resolve(r Ref) *Node {
	if a == nil || r.IsNil() || int(r.index) >= len(a.slots) {
		return nil
	}
	s := a.slots[r.index]
	if s.gen != r.gen || !s.owner.Valid() {
		return nil
	}
	return s.owner.Get()
}

// check makes sure that n is a live node of a.
func (a *Arena) check(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.arena == nil {
		return fmt.Errorf("%w: node has been removed", ErrStaleNode)
	}
	if n.arena != a {
		return ErrForeignNode
	}
	if a.resolve(n.self) != n {
		return fmt.Errorf("%w: %s", ErrStaleNode, n.self)
	}
	return nil
}

// Remove detaches n and destroys the subtree rooted at n. The arena gives up
// its counts on the nodes' blocks; nodes without other handles are dropped.
// Nodes of the subtree which are still held by handles elsewhere remain
// accessible through those handles, but are detached and no longer part of
// the arena.
// Remove returns the number of nodes removed.
func (a *Arena) Remove(n *Node) (int, error) {
	if err := a.check(n); err != nil {
		return 0, err
	}
	if err := n.Detach(); err != nil {
		return 0, err
	}
	var subtree []*Node
	collect(n, &subtree)
	for _, node := range subtree { // unlink everything before dropping anything
		node.arena = nil
		node.parent, node.firstChild, node.lastChild = Ref{}, Ref{}, Ref{}
		node.prevSibling, node.nextSibling = Ref{}, Ref{}
	}
	for _, node := range subtree {
		index := node.self.index
		node.self = Ref{}
		owner := a.slots[index].owner
		a.slots[index].owner = rc.Handle[Node]{}
		a.free = append(a.free, index)
		a.live--
		owner.Release()
	}
	tracer().Debugf("removed %d nodes from arena", len(subtree))
	return len(subtree), nil
}

func collect(n *Node, nodes *[]*Node) {
	*nodes = append(*nodes, n)
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		collect(ch, nodes)
	}
}
