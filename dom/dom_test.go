package dom

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestRegisterInterfacesTwice(t *testing.T) {
	reg := iface.NewRegistry()
	require.NoError(t, RegisterInterfaces(reg))
	err := RegisterInterfaces(reg)
	if !errors.Is(err, iface.ErrDuplicate) {
		t.Errorf("expected second registration to fail with ErrDuplicate, got %v", err)
	}
}

func TestDocumentWithNoElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	a := newArenaForTest(t)
	doc, err := NewDocument(a)
	require.NoError(t, err)
	el, err := doc.Get().DocumentElement()
	require.NoError(t, err)
	if el != nil {
		t.Errorf("expected document without children to have no element, has %v", el)
	}
}

// Scenario: append an element to a document; find it as document element.
func TestDocumentWithSingleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	a := newArenaForTest(t)
	doc, err := NewDocument(a)
	require.NoError(t, err)
	root, err := NewElement(a, "HTML")
	require.NoError(t, err)
	node, err := iface.CastHandle[tree.Node](a.Registry(), root)
	require.NoError(t, err)
	require.NoError(t, doc.Get().AppendChild(node.Get()))
	node.Release()
	//
	el, err := doc.Get().DocumentElement()
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Same(t, root.Get(), el)
	assert.Equal(t, "html", el.LocalName())
	assert.Equal(t, atom.Html, el.Atom())
}

func TestDocumentWithMultipleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	a := newArenaForTest(t)
	doc, err := NewDocument(a)
	require.NoError(t, err)
	first, err := NewElement(a, "html")
	require.NoError(t, err)
	second, err := NewElement(a, "html")
	require.NoError(t, err)
	require.NoError(t, doc.Get().AppendChild(first.Get().AsNode()))
	require.NoError(t, doc.Get().AppendChild(second.Get().AsNode()))
	_, err = doc.Get().DocumentElement()
	assert.ErrorIs(t, err, ErrMultipleElements)
}

// Scenario: Document and Element are siblings in the hierarchy.
func TestCastDocumentToElementFails(t *testing.T) {
	a := newArenaForTest(t)
	doc, err := NewDocument(a)
	require.NoError(t, err)
	reg := a.Registry()
	is, err := iface.Is[Element](reg, doc.Get())
	require.NoError(t, err)
	assert.False(t, is)
	_, err = iface.Cast[Element](reg, doc.Get())
	assert.ErrorIs(t, err, iface.ErrBadCast)
	_, err = iface.CastHandle[Element](reg, doc)
	assert.ErrorIs(t, err, iface.ErrBadCast)
}

func TestNodeRoundTrip(t *testing.T) {
	a := newArenaForTest(t)
	reg := a.Registry()
	el, err := NewElement(a, "p")
	require.NoError(t, err)
	node, err := iface.Cast[tree.Node](reg, el.Get())
	require.NoError(t, err)
	is, err := iface.Is[Element](reg, node)
	require.NoError(t, err)
	assert.True(t, is)
	back, err := iface.Cast[Element](reg, node)
	require.NoError(t, err)
	assert.Same(t, el.Get(), back)
	assert.Equal(t, "p", back.LocalName())
}

func TestNodeNames(t *testing.T) {
	a := newArenaForTest(t)
	reg := a.Registry()
	doc, err := NewDocument(a)
	require.NoError(t, err)
	el, err := NewElement(a, "my-widget")
	require.NoError(t, err)
	typ, err := NodeType(reg, doc.Get().AsNode())
	require.NoError(t, err)
	assert.Equal(t, html.DocumentNode, typ)
	typ, err = NodeType(reg, el.Get().AsNode())
	require.NoError(t, err)
	assert.Equal(t, html.ElementNode, typ)
	assert.Equal(t, "#document", NodeName(reg, doc.Get().AsNode()))
	assert.Equal(t, "MY-WIDGET", NodeName(reg, el.Get().AsNode()))
	assert.Equal(t, atom.Atom(0), el.Get().Atom())
	n, err := tree.Create[tree.Node](a)
	require.NoError(t, err)
	typ, err = NodeType(reg, n.Get())
	require.NoError(t, err)
	assert.Equal(t, html.ErrorNode, typ)
	assert.Equal(t, "Node", NodeName(reg, n.Get()))
}

func TestNodeTypeReportsLookupErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	a := newArenaForTest(t)
	el, err := NewElement(a, "p")
	require.NoError(t, err)
	unsealed := iface.NewRegistry()
	require.NoError(t, RegisterInterfaces(unsealed))
	typ, err := NodeType(unsealed, el.Get().AsNode())
	assert.ErrorIs(t, err, iface.ErrNotSealed)
	assert.Equal(t, html.ErrorNode, typ)
	other := iface.NewRegistry() // knows nothing about DOM interfaces
	other.Seal()
	_, err = NodeType(other, el.Get().AsNode())
	assert.ErrorIs(t, err, iface.ErrUnregistered)
	assert.Equal(t, "Element", NodeName(unsealed, el.Get().AsNode()))
}

// Copying the Node part of an element must not produce a value which can be
// cast back to Element: the copy has no room for the element's fields.
func TestCastOfCopiedNodeFails(t *testing.T) {
	a := newArenaForTest(t)
	reg := a.Registry()
	el, err := NewElement(a, "div")
	require.NoError(t, err)
	dup := new(tree.Node)
	reflect.ValueOf(dup).Elem().Set(reflect.ValueOf(el.Get().AsNode()).Elem())
	assert.Equal(t, ElementID, dup.TopID())
	_, err = iface.Cast[Element](reg, dup)
	assert.ErrorIs(t, err, iface.ErrCopied)
	_, err = iface.Is[Element](reg, dup)
	assert.ErrorIs(t, err, iface.ErrCopied)
	assert.Error(t, a.Resolve(el.Get().Ref()).AppendChild(dup), "copies are not part of the arena")
	back, err := iface.Cast[Element](reg, el.Get().AsNode())
	require.NoError(t, err)
	assert.Same(t, el.Get(), back)
}

func TestFindElementsBelowDocument(t *testing.T) {
	a := newArenaForTest(t)
	reg := a.Registry()
	doc, err := NewDocument(a)
	require.NoError(t, err)
	root, err := NewElement(a, "html")
	require.NoError(t, err)
	body, err := NewElement(a, "body")
	require.NoError(t, err)
	require.NoError(t, doc.Get().AppendChild(root.Get().AsNode()))
	require.NoError(t, root.Get().AppendChild(body.Get().AsNode()))
	elements, err := doc.Get().DescendantsWith(IsA[Element](reg))
	require.NoError(t, err)
	assert.Equal(t, []*tree.Node{root.Get().AsNode(), body.Get().AsNode()}, elements)
	d, err := body.Get().AncestorWith(IsA[Document](reg))
	require.NoError(t, err)
	assert.Same(t, doc.Get().AsNode(), d)
}

func newArenaForTest(t *testing.T) *tree.Arena {
	reg, err := NewHierarchy()
	require.NoError(t, err)
	return tree.NewArena(reg)
}
