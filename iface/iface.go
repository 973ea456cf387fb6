package iface

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

// ID identifies an interface. IDs are process-unique and non-zero.
type ID uint32

// Invalid is the zero ID. It is never a valid interface ID.
const Invalid ID = 0

// Valid is true for non-zero IDs.
func (id ID) Valid() bool {
	return id != Invalid
}

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}

// Errors reported by registries and casts.
var (
	ErrInvalidID    = errors.New("invalid interface ID")
	ErrDuplicate    = errors.New("interface already registered")
	ErrUnregistered = errors.New("interface not registered")
	ErrSealed       = errors.New("interface registry is sealed")
	ErrNotSealed    = errors.New("interface registry is still in registration phase")
	ErrBadCast      = errors.New("invalid interface cast")
	ErrLayout       = errors.New("invalid interface layout")
	ErrNilValue     = errors.New("cannot inspect nil interface value")
	ErrCopied       = errors.New("interface value is a copy")
)

// Object is the first field of every root interface. It holds the ID of
// the top-most interface a value has been constructed as.
//
// Objects must not be copied after being stamped. A copy still carries the
// top-most ID of the original, but not the memory of the original's
// subtypes; Is and Cast reject copies with ErrCopied.
type Object struct {
	_    noCopy
	top  ID
	self *Object // address at stamping time
}

// noCopy lets 'go vet' (copylocks) report copies of Objects.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// TopID returns the ID of the interface the value has been constructed as.
// It is Invalid for values which have not been stamped.
func (o *Object) TopID() ID {
	return o.top
}

func (o *Object) object() *Object {
	return o
}

// Interface is implemented by pointers to interface structs.
// The unexported method is promoted from Object, thus only types embedding
// an Object (transitively) implement Interface.
type Interface interface {
	InterfaceID() ID // static ID of the interface type; must not dereference the receiver
	TopID() ID       // ID of the top-most interface the value has been constructed as
	object() *Object
}

// Ptr is a constraint for pointers to interface structs.
type Ptr[T any] interface {
	*T
	Interface
}

// IDOf returns the static interface ID of T.
func IDOf[T any, PT Ptr[T]]() ID {
	var p PT
	return p.InterfaceID()
}

// Stamp marks p as having been constructed as interface T.
// Constructors of interfaces call Stamp once, before handing out the value.
func Stamp[T any, PT Ptr[T]](p PT) {
	o := p.object()
	o.top = IDOf[T, PT]()
	o.self = o
}
