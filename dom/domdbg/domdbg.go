/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/domkit/dom"
	"github.com/npillmayer/domkit/iface"
	"github.com/npillmayer/domkit/tree"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented text rendering of the tree under root.
// Each node is shown with its W3C node name and its arena reference.
func Print(reg *iface.Registry, root *tree.Node) string {
	printer := tp.New()
	printer.SetValue(label(reg, root))
	for ch := root.FirstChild(); ch != nil; ch = ch.NextSibling() {
		printNode(reg, printer, ch)
	}
	return printer.String()
}

func printNode(reg *iface.Registry, printer tp.Tree, n *tree.Node) {
	if !n.HasChildNodes() {
		printer.AddNode(label(reg, n))
		return
	}
	branch := printer.AddBranch(label(reg, n))
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		printNode(reg, branch, ch)
	}
}

func label(reg *iface.Registry, n *tree.Node) string {
	return fmt.Sprintf("%s [%s]", dom.NodeName(reg, n), n.Ref())
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	Name  string
	Label string
	Type  string
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the interface registry,
// the root node of the DOM and a Writer.
func ToGraphViz(reg *iface.Registry, root *tree.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*tree.Node]node, 64)
	if err = nodes(reg, root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(reg *iface.Registry, root *tree.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(reg, root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

func nodes(reg *iface.Registry, n *tree.Node, w io.Writer, dict map[*tree.Node]node,
	gparams *graphParamsType) error {
	//
	parent := domNode(reg, n, dict)
	if err := gparams.NodeTmpl.Execute(w, parent); err != nil {
		return err
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if err := nodes(reg, ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{parent, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func domNode(reg *iface.Registry, n *tree.Node, dict map[*tree.Node]node) node {
	if dn, ok := dict[n]; ok {
		return dn
	}
	dn := node{
		Name:  fmt.Sprintf("node%05d", len(dict)+1),
		Label: dom.NodeName(reg, n),
		Type:  reg.Name(n.TopID()),
	}
	dict[n] = dn
	return dn
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Type "Document" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=grey95 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
