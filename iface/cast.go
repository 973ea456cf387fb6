package iface

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/npillmayer/domkit/rc"
)

// Is reports whether v has been constructed as interface U or as one of U's
// subtypes, i.e. whether v may be cast to U.
func Is[U any, PU Ptr[U]](reg *Registry, v Interface) (bool, error) {
	if isNil(v) {
		return false, ErrNilValue
	}
	top := v.TopID()
	if !top.Valid() {
		return false, fmt.Errorf("%w: the stored ID of the top-most interface is 0", ErrInvalidID)
	}
	if o := v.object(); o.self != o {
		return false, fmt.Errorf("%w: %s value at %p has been stamped at %p", ErrCopied,
			reg.Name(top), o, o.self)
	}
	return reg.IsAncestor(top, IDOf[U, PU]())
}

// Cast reinterprets v as interface U. Up-casts always succeed; down-casts
// succeed if v has been constructed as U or as a subtype of U. No data is
// copied: the result points to the same address as v.
func Cast[U any, PU Ptr[U]](reg *Registry, v Interface) (PU, error) {
	var none PU
	ok, err := Is[U, PU](reg, v)
	if err != nil {
		return none, err
	}
	if !ok {
		return none, fmt.Errorf("%w: %s is not a %s", ErrBadCast,
			reg.Name(v.TopID()), reg.Name(IDOf[U, PU]()))
	}
	if err := CheckLayout[U](); err != nil {
		return none, err
	}
	return PU(reinterpret[U](v)), nil
}

// reinterpret is the only place where interface values change their type
// without a conversion checked by the compiler. It is sound because every
// interface struct starts with its supertype's struct, down to the Object,
// so all interfaces in a chain share the address of the Object.
func reinterpret[U any](v Interface) *U {
	return (*U)(unsafe.Pointer(v.object()))
}

// MustCast is like Cast but panics if the cast cannot be performed.
func MustCast[U any, PU Ptr[U]](reg *Registry, v Interface) PU {
	u, err := Cast[U, PU](reg, v)
	if err != nil {
		tracer().Errorf("%v", err)
		panic(fmt.Sprintf("iface: %s", err.Error()))
	}
	return u
}

// CastHandle casts the value of an owned handle to interface U. The returned
// handle shares the block of h and has to be released on its own; h remains
// valid.
func CastHandle[U any, PU Ptr[U], T any, PT Ptr[T]](reg *Registry, h rc.Handle[T]) (rc.Handle[U], error) {
	if !h.Valid() {
		return rc.Handle[U]{}, fmt.Errorf("%w: cannot cast nil or released handle", ErrNilValue)
	}
	if _, err := Cast[U, PU](reg, PT(h.Get())); err != nil {
		return rc.Handle[U]{}, err
	}
	return rc.Alias[U](h), nil
}

func isNil(v Interface) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
