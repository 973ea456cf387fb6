package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/domkit/dom"
	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	reg, doc := buildDocument(t)
	out := Print(reg, doc)
	t.Logf("document =\n%s", out)
	for _, name := range []string{"#document", "HTML", "HEAD", "BODY"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected printed tree to contain %s, doesn't", name)
		}
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.dom")
	defer teardown()
	//
	reg, doc := buildDocument(t)
	var buf bytes.Buffer
	if err := ToGraphViz(reg, doc, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph g {") || !strings.HasSuffix(out, "}\n") {
		t.Logf("dot =\n%s", out)
		t.Error("expected output to be a digraph")
	}
	if strings.Count(out, "->") != 3 {
		t.Logf("dot =\n%s", out)
		t.Errorf("expected 3 edges, have %d", strings.Count(out, "->"))
	}
}

func buildDocument(t *testing.T) (*iface.Registry, *tree.Node) {
	reg, err := dom.NewHierarchy()
	if err != nil {
		t.Fatal(err)
	}
	a := tree.NewArena(reg)
	doc, err := dom.NewDocument(a)
	if err != nil {
		t.Fatal(err)
	}
	parent := doc.Get().AsNode()
	var html *tree.Node
	for _, name := range []string{"html", "head", "body"} {
		el, err := dom.NewElement(a, name)
		if err != nil {
			t.Fatal(err)
		}
		if html == nil {
			html = el.Get().AsNode()
			err = parent.AppendChild(html)
		} else {
			err = html.AppendChild(el.Get().AsNode())
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	return reg, parent
}
