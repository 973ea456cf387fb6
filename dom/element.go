package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/rc"
	"github.com/npillmayer/domkit/tree"
	"golang.org/x/net/html/atom"
)

// Element is an element node, identified by its local name.
type Element struct {
	tree.Node
	tag  atom.Atom // 0 for names unknown to HTML
	name string    // local name, lower case
}

// InterfaceID is part of interface iface.Interface.
func (*Element) InterfaceID() iface.ID {
	return ElementID
}

// NewElement creates a new, detached element in arena a.
func NewElement(a *tree.Arena, localName string) (rc.Handle[Element], error) {
	h, err := tree.Create[Element](a)
	if err != nil {
		return h, err
	}
	e := h.Get()
	e.name = strings.ToLower(localName)
	e.tag = atom.Lookup([]byte(e.name))
	return h, nil
}

// LocalName returns the local name of e, e.g. "div".
func (e *Element) LocalName() string {
	return e.name
}

// TagName returns the upper-case qualified name of e, e.g. "DIV".
func (e *Element) TagName() string {
	return strings.ToUpper(e.name)
}

// Atom returns the HTML atom of e's name, or 0 for names unknown to HTML.
func (e *Element) Atom() atom.Atom {
	return e.tag
}
