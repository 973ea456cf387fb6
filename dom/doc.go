/*
Package dom provides the document-level interfaces built on the node tree.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Documents are trees of nodes (package tree). Each node is a value of
some DOM interface: a Document, an Element, and more to come. All of them
embed tree.Node as their first field and are registered in an interface
hierarchy (package iface):

	Node
	 ├── Document
	 └── Element

In a fully object oriented programming language we would subclass the
node type for every interface, but in Go we resort to composition, thus
including a tree node in every DOM interface. Tree operations hand out
*tree.Node values; clients get back to the DOM interface by casting:

	el, err := iface.Cast[dom.Element](reg, node)

Applications call RegisterInterfaces once at startup (or use
NewHierarchy), register their own interfaces and seal the registry
before creating any nodes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domkit.dom'
func tracer() tracing.Trace {
	return tracing.Select("domkit.dom")
}
