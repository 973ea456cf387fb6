package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidFilter is returned if a walk is started with a nil predicate or action.
var ErrInvalidFilter = errors.New("filter is invalid")

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various walk functions to
// collect a selection of nodes.
// test is the node under test, node is the node the walk started from.
type Predicate func(test *Node, node *Node) (match *Node, err error)

// Whatever is a predicate to match anything.
// It is useful to match the first node in a given direction.
func Whatever() Predicate {
	return func(test *Node, node *Node) (*Node, error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf() Predicate {
	return func(test *Node, node *Node) (match *Node, err error) {
		if !test.HasChildNodes() {
			return test, nil
		}
		return nil, nil
	}
}

// AncestorWith searches iteratively for the nearest ancestor of n matching a
// predicate. It returns nil if no ancestor matches.
func (n *Node) AncestorWith(predicate Predicate) (*Node, error) {
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	for anc := n.Parent(); anc != nil; anc = anc.Parent() {
		match, err := predicate(anc, n)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, nil // no matching ancestor found, not an error
}

// ChildrenWith returns the children of n matching a predicate, in sibling order.
func (n *Node) ChildrenWith(predicate Predicate) ([]*Node, error) {
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	var selection []*Node
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		match, err := predicate(ch, n)
		if err != nil {
			return selection, err
		}
		if match != nil {
			selection = append(selection, match)
		}
	}
	return selection, nil
}

// DescendantsWith finds descendants of n matching a predicate, in document
// order. The search does not include n itself. If the predicate returns an
// error for a node, the walk does not descend below that node; the last error
// is returned together with the selection.
func (n *Node) DescendantsWith(predicate Predicate) ([]*Node, error) {
	if predicate == nil {
		return nil, ErrInvalidFilter
	}
	var selection []*Node
	var lasterror error
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		lasterror = descendantsWith(ch, n, predicate, &selection, lasterror)
	}
	return selection, lasterror
}

func descendantsWith(node, start *Node, predicate Predicate, selection *[]*Node, lasterror error) error {
	match, err := predicate(node, start)
	if err != nil {
		return err // do not descend further
	}
	if match != nil {
		*selection = append(*selection, match)
	}
	for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
		lasterror = descendantsWith(ch, start, predicate, selection, lasterror)
	}
	return lasterror
}

// AllDescendants returns all descendants of n in document order.
// This is just a wrapper around `n.DescendantsWith(Whatever())`.
func (n *Node) AllDescendants() []*Node {
	nodes, _ := n.DescendantsWith(Whatever())
	return nodes
}

// Action is a function type to operate on tree nodes.
// Non-nil result nodes are collected by the traversal.
type Action func(n *Node, parent *Node, position int) (*Node, error)

// TopDown traverses a tree starting at (and including) n.
// The traversal guarantees that parents are always processed before
// their children, and children in sibling order.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted; the traversal
// continues with the node's next sibling. The last error is returned.
func (n *Node) TopDown(action Action) ([]*Node, error) {
	if action == nil {
		return nil, ErrInvalidFilter
	}
	var results []*Node
	parent, position := n.Parent(), 0
	if parent != nil {
		position = parent.IndexOfChild(n)
	}
	err := topDown(n, parent, position, action, &results, nil)
	return results, err
}

func topDown(node, parent *Node, position int, action Action, results *[]*Node, lasterror error) error {
	result, err := action(node, parent, position)
	if err != nil {
		return err
	}
	if result != nil {
		*results = append(*results, result)
	}
	i := 0
	for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
		lasterror = topDown(ch, node, i, action, results, lasterror)
		i++
	}
	return lasterror
}
