package rc

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"unsafe"
)

// header is the leading part of every block. Its size is two machine words,
// a multiple of the maximum alignment on every platform Go supports.
// Therefore the value of a block starts at the same offset regardless of
// the value's type.
type header struct {
	count int    // number of live handles
	drop  func() // drops the value; nil after the value has been dropped
}

type block[T any] struct {
	header
	value T
}

// Dropper is implemented by values which have to let go of resources when
// the last handle to them is released.
type Dropper interface {
	Drop()
}

// Handle is a reference-counted ownership handle to a heap-resident value of type T.
// The zero Handle is a nil handle.
type Handle[T any] struct {
	hdr *header // shared block header
	val *T      // value field of the block
}

// New allocates a block for value and returns the first handle to it,
// with a count of 1.
func New[T any](value T) Handle[T] {
	b := &block[T]{value: value}
	b.count = 1
	b.drop = func() {
		dropValue(&b.value)
	}
	return Handle[T]{hdr: &b.header, val: &b.value}
}

func dropValue[T any](v *T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*v = zero
}

// valueOffset is the byte offset of the value field within a block.
func valueOffset[T any]() uintptr {
	var b block[T]
	return unsafe.Offsetof(b.value)
}

// FromInterior reconstructs a handle from a reference to the value of an
// existing block and increments the block's count.
//
// ref must point to the value field of a block created by New (either a
// block for T or a block for a type whose leading field is a T).
// This is not checked; violating the contract is undefined behaviour.
// Outside of package tree, use Node.Handle instead.
func FromInterior[T any](ref *T) Handle[T] {
	assertThat(ref != nil, "cannot reconstruct handle from nil reference")
	hdr := (*header)(unsafe.Add(unsafe.Pointer(ref), -int(valueOffset[T]())))
	assertThat(hdr.count > 0, "interior reference %p does not belong to a live block", ref)
	hdr.count++
	return Handle[T]{hdr: hdr, val: ref}
}

// Alias returns a handle of type U to the value of h, incrementing the count.
// The caller guarantees that a *T may be reinterpreted as a *U, i.e. that U is
// T itself or the leading field (transitively) of T, or vice versa for a value
// originally created as a U. Alias is meant for type-checked casting layers
// only; applications use iface.CastHandle.
func Alias[U, T any](h Handle[T]) Handle[U] {
	v := h.Get()
	h.hdr.count++
	return Handle[U]{hdr: h.hdr, val: (*U)(unsafe.Pointer(v))}
}

// Clone returns a new handle aliasing the block of h. The count, observed
// identically through every handle of the block, is incremented by one.
func (h Handle[T]) Clone() Handle[T] {
	assertThat(h.Valid(), "cannot clone a nil or released handle")
	h.hdr.count++
	return Handle[T]{hdr: h.hdr, val: h.val}
}

// Get dereferences h. It panics if h is nil or its block has already been dropped.
func (h Handle[T]) Get() *T {
	assertThat(h.hdr != nil, "dereferencing nil handle")
	assertThat(h.hdr.count > 0, "dereferencing released handle %p", h.val)
	return h.val
}

// Release gives back h. If h was the last live handle of its block, the
// value is dropped and Release returns true.
//
// A handle must be released at most once; h must not be used afterwards.
func (h Handle[T]) Release() bool {
	assertThat(h.hdr != nil, "releasing nil handle")
	assertThat(h.hdr.count > 0, "releasing handle %p more often than it has been acquired", h.val)
	h.hdr.count--
	if h.hdr.count > 0 {
		return false
	}
	tracer().Debugf("dropping value of block %p", h.hdr)
	drop := h.hdr.drop
	h.hdr.drop = nil
	if drop != nil {
		drop()
	}
	return true
}

// Count returns the number of live handles of h's block (0 for a nil handle).
func (h Handle[T]) Count() int {
	if h.hdr == nil {
		return 0
	}
	return h.hdr.count
}

// IsNil is true for the zero Handle.
func (h Handle[T]) IsNil() bool {
	return h.hdr == nil
}

// Valid is true if h may be dereferenced.
func (h Handle[T]) Valid() bool {
	return h.hdr != nil && h.hdr.count > 0
}

// Same is true if h and other alias the same block.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.hdr == other.hdr
}

func (h Handle[T]) String() string {
	if h.hdr == nil {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%p #%d)", h.val, h.hdr.count)
}
