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
)

// Errors returned by tree mutations.
var (
	ErrNilNode       = errors.New("node is nil")
	ErrNotDetached   = errors.New("node to insert is not detached")
	ErrSelfInsertion = errors.New("cannot insert node at itself")
	ErrHierarchy     = errors.New("node to insert is an ancestor of the insertion point")
	ErrNoParent      = errors.New("insertion point has no parent")
	ErrForeignNode   = errors.New("node belongs to another arena")
	ErrStaleNode     = errors.New("stale node reference")
)

// AppendChild makes node the new last child of n.
func (n *Node) AppendChild(node *Node) error {
	if err := n.checkInsertion(node); err != nil {
		return err
	}
	last := n.LastChild()
	node.parent = n.self
	if last == nil {
		n.firstChild = node.self
	} else {
		last.nextSibling = node.self
		node.prevSibling = last.self
	}
	n.lastChild = node.self
	tracer().Debugf("appended %s to %s", node.self, n.self)
	n.arena.verify(n)
	return nil
}

// PrependChild makes node the new first child of n.
func (n *Node) PrependChild(node *Node) error {
	if err := n.checkInsertion(node); err != nil {
		return err
	}
	first := n.FirstChild()
	node.parent = n.self
	if first == nil {
		n.lastChild = node.self
	} else {
		first.prevSibling = node.self
		node.nextSibling = first.self
	}
	n.firstChild = node.self
	tracer().Debugf("prepended %s to %s", node.self, n.self)
	n.arena.verify(n)
	return nil
}

// InsertBefore inserts node immediately before n, as a child of n's parent.
func (n *Node) InsertBefore(node *Node) error {
	if err := n.checkInsertion(node); err != nil {
		return err
	}
	parent := n.Parent()
	if parent == nil {
		return ErrNoParent
	}
	prev := n.PreviousSibling()
	node.parent = n.parent
	node.prevSibling = n.prevSibling
	node.nextSibling = n.self
	n.prevSibling = node.self
	if prev == nil {
		parent.firstChild = node.self
	} else {
		prev.nextSibling = node.self
	}
	tracer().Debugf("inserted %s before %s", node.self, n.self)
	n.arena.verify(parent)
	return nil
}

// InsertAfter inserts node immediately after n, as a child of n's parent.
func (n *Node) InsertAfter(node *Node) error {
	if err := n.checkInsertion(node); err != nil {
		return err
	}
	parent := n.Parent()
	if parent == nil {
		return ErrNoParent
	}
	next := n.NextSibling()
	node.parent = n.parent
	node.nextSibling = n.nextSibling
	node.prevSibling = n.self
	n.nextSibling = node.self
	if next == nil {
		parent.lastChild = node.self
	} else {
		next.prevSibling = node.self
	}
	tracer().Debugf("inserted %s after %s", node.self, n.self)
	n.arena.verify(parent)
	return nil
}

// Detach removes n from its current position. Its former previous and next
// siblings become linked to each other. Detaching a detached node is a no-op.
// Detach does not touch n's children.
func (n *Node) Detach() error {
	if n == nil {
		return ErrNilNode
	}
	if err := n.arena.check(n); err != nil {
		return err
	}
	if n.IsDetached() {
		return nil
	}
	parent, prev, next := n.Parent(), n.PreviousSibling(), n.NextSibling()
	if prev != nil {
		prev.nextSibling = n.nextSibling
	} else if parent != nil {
		parent.firstChild = n.nextSibling
	}
	if next != nil {
		next.prevSibling = n.prevSibling
	} else if parent != nil {
		parent.lastChild = n.prevSibling
	}
	n.parent, n.prevSibling, n.nextSibling = Ref{}, Ref{}, Ref{}
	tracer().Debugf("detached %s", n.self)
	if parent != nil {
		n.arena.verify(parent)
	}
	n.arena.verify(n)
	return nil
}

// checkInsertion tests the preconditions for inserting node at n.
func (n *Node) checkInsertion(node *Node) error {
	if n == nil || node == nil {
		return ErrNilNode
	}
	a := n.arena
	if err := a.check(n); err != nil {
		return err
	}
	if err := a.check(node); err != nil {
		return err
	}
	var err error
	switch {
	case node == n:
		err = fmt.Errorf("%w: %s", ErrSelfInsertion, n.self)
	case !node.IsDetached():
		err = fmt.Errorf("%w: %s", ErrNotDetached, node.self)
	case node.Contains(n):
		err = fmt.Errorf("%w: %s contains %s", ErrHierarchy, node.self, n.self)
	}
	if err != nil {
		tracer().Errorf("%v", err)
	}
	return err
}
