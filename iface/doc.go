/*
Package iface implements a runtime interface hierarchy with type-checked
up- and down-casting.

Code holding only a base-type value (e.g. a tree node) has to discover
which concrete interface the value actually is, and then cast to it.
An interface is represented by a struct. Inheritance is done by
composition: the first field of a derived interface is the embedded
struct of the interface it inherits from. The first field of a root
interface is an Object, which stores the ID of the top-most (most derived)
interface the value was constructed as.

	type Node struct {      // root interface
	    iface.Object
	    ...
	}

	type Element struct {   // inherits from Node
	    Node
	    ...
	}

A pointer to any interface is thus also a valid pointer to every supertype
at the same address. Up-casting is a matter of reinterpreting an address.
Down-casting is validated against a Registry, which maps each interface ID
to the ID of its supertype. From the top-most ID stored in a value the
whole inheritance chain can be reconstructed.

Every interface type has to

	1. embed its supertype (or Object, if it is a root) as its first field,
	2. declare `func (*T) InterfaceID() iface.ID` returning a process-unique
	   non-zero ID, without dereferencing the receiver,
	3. be registered exactly once with the application's Registry, after its
	   supertype, before the registry is sealed.

RegisterType checks 1 and 2 by reflection.

Values are stamped by their constructor (see Stamp) and must not be copied
afterwards: a copy of a Node taken from an Element would still claim to be
an Element. Stamping records the address of the Object, and Is and Cast
fail with ErrCopied for values living elsewhere.

Registration Phase

Registries are filled during application startup and then sealed.
Lookups are rejected before Seal is called, registrations after it.
This enforces that the registration phase is complete before any cast is
attempted. After sealing, a registry may be read concurrently.

Errors

Cast failures and lookups of unknown interfaces are reported as errors,
uniformly for Is, Cast and CastHandle. MustCast is available for callers
who consider a failed cast a fatal contract violation.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iface

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domkit.iface'.
func tracer() tracing.Trace {
	return tracing.Select("domkit.iface")
}
