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

// ErrBrokenLinkage is returned by Validate for nodes violating tree invariants.
var ErrBrokenLinkage = errors.New("broken tree linkage")

// Validate checks the linkage invariants of n and its children:
// the child chain is consistent in both directions, every child points back
// to n, and n's own sibling links are consistent with its parent.
func (n *Node) Validate() error {
	if n.arena == nil {
		return fmt.Errorf("%w: node has been removed", ErrStaleNode)
	}
	broken := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: node %s: %s", ErrBrokenLinkage, n.self, fmt.Sprintf(format, args...))
	}
	first, last := n.FirstChild(), n.LastChild()
	if (first == nil) != (last == nil) {
		return broken("has only one of first/last child")
	}
	if first != nil && !first.prevSibling.IsNil() {
		return broken("first child %s has a previous sibling", first.self)
	}
	if last != nil && !last.nextSibling.IsNil() {
		return broken("last child %s has a next sibling", last.self)
	}
	var forward []*Node
	for ch := first; ch != nil; ch = ch.NextSibling() {
		if ch == n {
			return broken("is its own child")
		}
		if ch.parent != n.self {
			return broken("child %s has parent %s", ch.self, ch.parent)
		}
		forward = append(forward, ch)
		if len(forward) > n.arena.live {
			return broken("child chain has a cycle")
		}
	}
	if len(forward) > 0 && forward[len(forward)-1] != last {
		return broken("next-sibling chain does not end in last child")
	}
	i := len(forward) - 1
	for ch := last; ch != nil; ch = ch.PreviousSibling() {
		if i < 0 || forward[i] != ch {
			return broken("previous-sibling chain is not the reverse of the next-sibling chain")
		}
		i--
	}
	if i != -1 {
		return broken("previous-sibling chain is shorter than next-sibling chain")
	}
	if parent := n.Parent(); parent != nil {
		if parent.IndexOfChild(n) < 0 {
			return broken("is not in the child chain of its parent %s", parent.self)
		}
		steps := 0
		for anc := parent; anc != nil; anc = anc.Parent() {
			if anc == n {
				return broken("is its own ancestor")
			}
			if steps++; steps > n.arena.live {
				return broken("ancestor chain has a cycle")
			}
		}
	} else if !n.prevSibling.IsNil() || !n.nextSibling.IsNil() {
		return broken("has siblings but no parent")
	}
	return nil
}

// verify asserts the invariants around n, if invariant checking is enabled.
func (a *Arena) verify(n *Node) {
	if !checkInvariants {
		return
	}
	err := n.Validate()
	assertThat(err == nil, "%v", err)
}
