/*
Package rc implements reference-counted handles for heap-resident values.

A Handle owns a heap block holding a count and a value. Several handles may
alias one block (shared ownership); the count tracks how many of them are
live. Handles are created with New, duplicated with Clone and given back
with Release. When the last handle is released, the value is dropped: its
Drop method is called (if it implements Dropper) and the value is reset to
its zero value. Memory itself is reclaimed by the Go runtime once no
pointer to the block remains.

Interior References

FromInterior reconstructs a handle from a plain pointer to a block's value.
This is required by code which stores handles inside values while being
handed only a reference at the call site. The reconstruction is done by
address arithmetic and is unchecked: the pointer must point to the value
field of a block created by New. The value field sits at the same offset
for every value type, so a pointer to the leading field of a value is a
valid interior reference for the leading field's type as well.

FromInterior and Alias are exported for the node arena (package tree) and
the casting layer (package iface) of this module, which guarantee the
pointer contract. Application code should obtain handles from those
packages (e.g., tree.Create, Node.Handle or iface.CastHandle) and never call
FromInterior or Alias itself.

Ownership

Counting is not atomic. Handles must not be cloned, released or
dereferenced concurrently from different goroutines; trees built from
handles are owned by one goroutine at a time (or guarded externally).
Two handles aliasing one block may hand out the same *T. Callers are
responsible for not mutating through both at once.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rc

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domkit.rc'.
func tracer() tracing.Trace {
	return tracing.Select("domkit.rc")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rc: "+msg, msgargs...)
		panic(msg)
	}
}
