/*
Package tree implements the node tree of documents: a mutable n-ary tree
with stable sibling order, built from interface values of package iface.

Nodes

Node is the root interface of every tree participant. Concrete node types
(documents, elements, …) embed a Node as their first field, following the
layout rules of package iface. Clients holding a *Node may discover and
cast to the concrete type with iface.Is and iface.Cast.

Nodes never exist standalone. They are created inside an Arena, which owns
them. The arena keeps one reference count on every node's heap block, in
addition to the handle returned to the creator. Nodes refer to their
parent, children and siblings by generational references into the arena
instead of by owning handles, so the doubly-linked structure does not form
ownership cycles. Removing a node from the arena destroys its subtree and
invalidates all references to it.

Mutations

Insertion operations (AppendChild, PrependChild, InsertBefore, InsertAfter)
require the inserted node to be detached (no parent, no siblings), distinct
from the insertion point and not an ancestor of it. Detach removes a node
from its position. After every operation the following invariants hold:

	- a node has a parent iff it appears in that parent's child chain
	- a first child has no previous sibling, a last child no next sibling
	- the next-sibling chain from first to last child is the exact
	  reverse of the previous-sibling chain
	- no node is its own ancestor

Building with tag `domassert` verifies the invariants of the affected
neighbourhood after every mutation and panics if one is violated.

Concurrency

Trees are not safe for concurrent use. A tree is built and mutated by one
goroutine at a time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domkit.tree'.
func tracer() tracing.Trace {
	return tracing.Select("domkit.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		panic(msg)
	}
}
