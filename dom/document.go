package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/rc"
	"github.com/npillmayer/domkit/tree"
)

// ErrMultipleElements is returned if a document has more than one element child.
var ErrMultipleElements = errors.New("document has more than one element child")

// Document is the root of a document tree.
type Document struct {
	tree.Node
}

// InterfaceID is part of interface iface.Interface.
func (*Document) InterfaceID() iface.ID {
	return DocumentID
}

// NewDocument creates a new, empty document in arena a.
func NewDocument(a *tree.Arena) (rc.Handle[Document], error) {
	return tree.Create[Document](a)
}

// DocumentElement returns the document element, i.e. the single element
// child of d, or nil if d has no element child.
// A document with more than one element child is malformed; DocumentElement
// returns ErrMultipleElements for it.
func (d *Document) DocumentElement() (*Element, error) {
	if d.Arena() == nil {
		return nil, tree.ErrStaleNode
	}
	reg := d.Arena().Registry()
	elements, err := d.ChildrenWith(IsA[Element](reg))
	if err != nil {
		return nil, err
	}
	switch len(elements) {
	case 0:
		return nil, nil
	case 1:
		return iface.Cast[Element](reg, elements[0])
	}
	tracer().Errorf("document has %d element children", len(elements))
	return nil, fmt.Errorf("%w: found %d", ErrMultipleElements, len(elements))
}
