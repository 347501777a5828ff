// Package sceneio reads and writes scene graphs as JSON documents. Variant
// fields are handled by the node type table; this package handles the tree.
package sceneio

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"fullmetal/nodetype"
	"fullmetal/scene"
)

const ChildrenKey = "children"

// Document is the top level of a scene file.
type Document struct {
	Nodes []nodetype.Object `json:"nodes"`
}

// WriteNode writes n and its subtree into obj. It reports false when n's
// type is not registered; such nodes are skipped together with their
// children.
func WriteNode(obj nodetype.Object, n scene.Node, table *nodetype.Table) (bool, error) {
	ok, err := table.WriteNode(obj, n)
	if err != nil || !ok {
		return ok, err
	}

	children := make([]nodetype.Object, 0, len(n.Base().Children()))
	for _, child := range n.Base().Children() {
		childObj := nodetype.Object{}
		ok, err := WriteNode(childObj, child, table)
		if err != nil {
			return false, err
		}
		if !ok {
			slog.Warn("skipping unregistered node type", "name", child.Base().Name, "descendants", child.Base().DescendantCount())
			continue
		}
		children = append(children, childObj)
	}
	if len(children) > 0 {
		if err := obj.Set(ChildrenKey, children); err != nil {
			return false, err
		}
	}
	return true, nil
}

// ReadNode builds the subtree described by obj. Children keep their
// document order.
func ReadNode(obj nodetype.Object, table *nodetype.Table) (scene.Node, error) {
	n, err := table.ReadNode(obj)
	if err != nil {
		return nil, err
	}

	if !obj.Has(ChildrenKey) {
		return n, nil
	}
	var children []nodetype.Object
	if _, err := obj.Get(ChildrenKey, &children); err != nil {
		return nil, err
	}
	for i, childObj := range children {
		child, err := ReadNode(childObj, table)
		if err != nil {
			return nil, errors.Wrapf(err, "child %d of %q", i, n.Base().Name)
		}
		n.Base().AddChild(child)
	}
	return n, nil
}

// WriteGraph converts every root of g into a document.
func WriteGraph(g *scene.Graph, table *nodetype.Table) (*Document, error) {
	doc := &Document{Nodes: make([]nodetype.Object, 0, len(g.Nodes()))}
	for _, n := range g.Nodes() {
		obj := nodetype.Object{}
		ok, err := WriteNode(obj, n, table)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Warn("skipping unregistered node type", "name", n.Base().Name, "descendants", n.Base().DescendantCount())
			continue
		}
		doc.Nodes = append(doc.Nodes, obj)
	}
	return doc, nil
}

// ReadGraph builds a graph from doc. Nothing is returned on error.
func ReadGraph(doc *Document, table *nodetype.Table) (*scene.Graph, error) {
	g := scene.NewGraph()
	for i, obj := range doc.Nodes {
		n, err := ReadNode(obj, table)
		if err != nil {
			return nil, errors.Wrapf(err, "node %d", i)
		}
		g.AddNode(n)
	}
	return g, nil
}

// Encode writes g to w as indented JSON.
func Encode(w io.Writer, g *scene.Graph, table *nodetype.Table) error {
	doc, err := WriteGraph(g, table)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return errors.Wrap(enc.Encode(doc), "encoding scene")
}

// ErrNoNodes is returned for a document without a "nodes" array.
var ErrNoNodes = errors.New(`scene has no "nodes" array`)

// Decode reads exactly one scene document from r. Unknown top-level keys
// are ignored; anything after the document is an error.
func Decode(r io.Reader, table *nodetype.Table) (*scene.Graph, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("parsing scene: unexpected data after the document")
	}
	if doc.Nodes == nil {
		return nil, ErrNoNodes
	}
	return ReadGraph(&doc, table)
}

// SaveFile writes g to path, replacing any existing file.
func SaveFile(path string, g *scene.Graph, table *nodetype.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create scene file")
	}
	if err := Encode(f, g, table); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "failed to write scene file")
}

func LoadFile(path string, table *nodetype.Table) (*scene.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scene file")
	}
	defer f.Close()

	g, err := Decode(f, table)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return g, nil
}
