package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/tree"
	"golang.org/x/net/html"
)

// Interface IDs of the DOM interfaces. Node is tree.NodeID.
const (
	DocumentID iface.ID = 2
	ElementID  iface.ID = 3
)

// RegisterInterfaces registers Node, Document and Element with reg.
// It has to be called exactly once per registry, before reg is sealed.
func RegisterInterfaces(reg *iface.Registry) error {
	if err := iface.RegisterType[tree.Node](reg, "Node"); err != nil {
		return err
	}
	if err := iface.RegisterType[Document](reg, "Document"); err != nil {
		return err
	}
	if err := iface.RegisterType[Element](reg, "Element"); err != nil {
		return err
	}
	tracer().Debugf("DOM interfaces registered")
	return nil
}

// NewHierarchy returns a sealed registry holding the DOM interfaces.
// Applications which define interfaces of their own use RegisterInterfaces instead.
func NewHierarchy() (*iface.Registry, error) {
	reg := iface.NewRegistry()
	if err := RegisterInterfaces(reg); err != nil {
		return nil, err
	}
	reg.Seal()
	return reg, nil
}

// IsA is a tree predicate to match nodes of interface U (or of subtypes of U).
func IsA[U any, PU iface.Ptr[U]](reg *iface.Registry) tree.Predicate {
	return func(test *tree.Node, node *tree.Node) (*tree.Node, error) {
		ok, err := iface.Is[U, PU](reg, test)
		if err != nil || !ok {
			return nil, err
		}
		return test, nil
	}
}

// NodeType returns the HTML node type corresponding to the interface of n.
// Nodes which are neither documents nor elements are of type html.ErrorNode.
// Errors of the interface lookup (e.g., an unsealed registry) are returned.
func NodeType(reg *iface.Registry, n *tree.Node) (html.NodeType, error) {
	ok, err := iface.Is[Element](reg, n)
	if err != nil {
		return html.ErrorNode, err
	}
	if ok {
		return html.ElementNode, nil
	}
	if ok, err = iface.Is[Document](reg, n); err != nil {
		return html.ErrorNode, err
	} else if ok {
		return html.DocumentNode, nil
	}
	return html.ErrorNode, nil
}

// NodeName returns the W3C node name of n: the upper-case tag name for
// elements, "#document" for documents, and the registered interface name
// for other nodes. If n's interface cannot be determined, the error is
// traced and the registered name is returned.
func NodeName(reg *iface.Registry, n *tree.Node) string {
	typ, err := NodeType(reg, n)
	if err != nil {
		tracer().Errorf("cannot name node %s: %v", n.Ref(), err)
	}
	switch typ {
	case html.ElementNode:
		return iface.MustCast[Element](reg, n).TagName()
	case html.DocumentNode:
		return "#document"
	}
	return reg.Name(n.TopID())
}
