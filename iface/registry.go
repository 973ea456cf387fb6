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
	"sync"
)

type entry struct {
	parent ID     // supertype or Invalid for root interfaces
	name   string // for diagnostics
}

// Registry keeps track of the interface hierarchy by mapping an interface ID
// to the ID of the interface it inherits from.
//
// Applications create one registry at startup, register all interfaces and
// then seal it. Registries are passed explicitly to every operation needing
// lookups; independent registries (e.g., one per test) do not interfere.
type Registry struct {
	lock    sync.RWMutex
	entries map[ID]entry
	sealed  bool
}

// NewRegistry creates an empty registry in registration phase.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]entry)}
}

// Register inserts a mapping from interface id to its supertype parent.
// parent is Invalid for root interfaces. Supertypes have to be registered
// before their subtypes, which keeps the hierarchy free of cycles.
func (reg *Registry) Register(id, parent ID) error {
	return reg.register(id, parent, "")
}

func (reg *Registry) register(id, parent ID, name string) error {
	if !id.Valid() {
		return fmt.Errorf("%w: cannot register interface with ID 0", ErrInvalidID)
	}
	if id == parent {
		return fmt.Errorf("%w: interface %s cannot inherit from itself", ErrInvalidID, id)
	}
	reg.lock.Lock()
	defer reg.lock.Unlock()
	if reg.sealed {
		return fmt.Errorf("%w: cannot register interface %s", ErrSealed, id)
	}
	if e, ok := reg.entries[id]; ok {
		return fmt.Errorf("%w: ID %s is taken by %s", ErrDuplicate, id, e.display(id))
	}
	if parent.Valid() {
		if _, ok := reg.entries[parent]; !ok {
			return fmt.Errorf("%w: supertype %s of %s has to be registered first",
				ErrUnregistered, parent, id)
		}
	}
	reg.entries[id] = entry{parent: parent, name: name}
	tracer().Debugf("registered interface %s (%s) with supertype %s", id, name, parent)
	return nil
}

// Seal ends the registration phase. Sealing is idempotent.
func (reg *Registry) Seal() {
	reg.lock.Lock()
	defer reg.lock.Unlock()
	reg.sealed = true
}

// Sealed is true after Seal has been called.
func (reg *Registry) Sealed() bool {
	reg.lock.RLock()
	defer reg.lock.RUnlock()
	return reg.sealed
}

// Reset clears all mappings and re-opens the registration phase.
// It is intended for tests which repeatedly initialize a shared registry.
func (reg *Registry) Reset() {
	reg.lock.Lock()
	defer reg.lock.Unlock()
	reg.entries = make(map[ID]entry)
	reg.sealed = false
}

// Len returns the number of registered interfaces.
func (reg *Registry) Len() int {
	reg.lock.RLock()
	defer reg.lock.RUnlock()
	return len(reg.entries)
}

// Parent returns the supertype of interface id, Invalid for root interfaces.
func (reg *Registry) Parent(id ID) (ID, error) {
	reg.lock.RLock()
	defer reg.lock.RUnlock()
	if err := reg.readable(); err != nil {
		return Invalid, err
	}
	e, ok := reg.entries[id]
	if !ok {
		return Invalid, fmt.Errorf("%w: no interface with ID %s", ErrUnregistered, id)
	}
	return e.parent, nil
}

// Name returns the name an interface has been registered with. For
// anonymous registrations it falls back to the ID.
func (reg *Registry) Name(id ID) string {
	reg.lock.RLock()
	defer reg.lock.RUnlock()
	return reg.entries[id].display(id)
}

// IsAncestor walks the inheritance chain upwards from interface top and
// reports whether sought is part of it (top itself included).
// The walk is bounded by the depth of the hierarchy.
func (reg *Registry) IsAncestor(top, sought ID) (bool, error) {
	if !top.Valid() || !sought.Valid() {
		return false, fmt.Errorf("%w: cannot relate %s to %s", ErrInvalidID, top, sought)
	}
	reg.lock.RLock()
	defer reg.lock.RUnlock()
	if err := reg.readable(); err != nil {
		return false, err
	}
	if _, ok := reg.entries[sought]; !ok {
		return false, fmt.Errorf("%w: no interface with ID %s", ErrUnregistered, sought)
	}
	for id := top; id.Valid(); {
		if id == sought {
			return true, nil
		}
		e, ok := reg.entries[id]
		if !ok {
			return false, fmt.Errorf("%w: no interface with ID %s", ErrUnregistered, id)
		}
		id = e.parent
	}
	return false, nil
}

// readable must be called with the lock held.
func (reg *Registry) readable() error {
	if !reg.sealed {
		return ErrNotSealed
	}
	return nil
}

func (e entry) display(id ID) string {
	if e.name == "" {
		return id.String()
	}
	return e.name
}

// --- Typed registration ----------------------------------------------------

var objectType = reflect.TypeOf(Object{})

var interfaceType = reflect.TypeOf((*Interface)(nil)).Elem()

// RegisterType registers interface T with reg. The supertype is derived from
// T's first field, which has to be either an embedded interface struct or an
// Object (for root interfaces). RegisterType checks that T follows the layout
// rules and declares its own interface ID.
// If name is empty, the name of T is used for diagnostics.
func RegisterType[T any, PT Ptr[T]](reg *Registry, name string) error {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if err := CheckLayout[T](); err != nil {
		return err
	}
	id := PT(new(T)).InterfaceID() // not IDOf: a promoted InterfaceID would dereference nil
	parent := Invalid
	if lead := typ.Field(0).Type; lead != objectType {
		sup := reflect.New(lead).Interface().(Interface)
		parent = sup.InterfaceID()
		if parent == id {
			return fmt.Errorf("%w: %v does not declare its own interface ID", ErrLayout, typ)
		}
	}
	if name == "" {
		name = typ.Name()
	}
	return reg.register(id, parent, name)
}

var layouts sync.Map // reflect.Type → error

// CheckLayout verifies that T is a struct type whose chain of first fields
// consists of embedded interface structs and ends in an Object.
// Results are cached per type.
func CheckLayout[T any]() error {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if err, ok := layouts.Load(typ); ok {
		if err == nil {
			return nil
		}
		return err.(error)
	}
	err := checkLayout(typ)
	layouts.Store(typ, err)
	return err
}

func checkLayout(typ reflect.Type) error {
	for t := typ; t != objectType; {
		if t.Kind() != reflect.Struct || t.NumField() == 0 {
			return fmt.Errorf("%w: %v is not an interface struct", ErrLayout, typ)
		}
		if !reflect.PtrTo(t).Implements(interfaceType) {
			return fmt.Errorf("%w: %v does not implement iface.Interface", ErrLayout, t)
		}
		lead := t.Field(0)
		if lead.Type != objectType && (!lead.Anonymous || lead.Type.Kind() != reflect.Struct) {
			return fmt.Errorf("%w: first field of %v has to embed its supertype", ErrLayout, t)
		}
		t = lead.Type
	}
	return nil
}
