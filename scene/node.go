// Package scene holds the retained-mode scene graph: a tree of polymorphic
// nodes, each owning its children, rendered through a Renderer capability.
//
// Ownership is strictly tree shaped. A node owns its children and keeps a
// non-owning reference to its parent; a Graph owns its root nodes. Nothing
// in this package is safe for concurrent use.
package scene

import (
	"slices"
	"sync/atomic"

	"fullmetal/core"
)

// Categories decide the order root nodes are rendered in; lower first.
const (
	LightCategory   = -1
	DefaultCategory = 1
)

// Node is a scene graph entity. Concrete variants embed NodeBase, which
// provides Base, and implement Render and Clone themselves.
type Node interface {
	// Base exposes the state shared by every variant.
	Base() *NodeBase

	// Render draws the node and then its enabled children. Implementations
	// must call NodeBase.Render after drawing, otherwise the subtree is
	// silently pruned from rendering.
	Render(r Renderer)

	// Clone deep-copies the node and all of its children, enabled or not.
	// The copy has no parent and every node in it has a fresh id.
	Clone() Node
}

var nodeIDCounter atomic.Uint32

func nextNodeID() uint32 {
	return nodeIDCounter.Add(1)
}

// NodeBase is the state every node variant shares.
type NodeBase struct {
	Name      string
	Enabled   bool
	Transform core.Transform

	id       uint32
	category int
	parent   *NodeBase
	children []Node
}

// NewNodeBase returns the base state for a new node. Every call takes a new
// id from a process-wide counter; ids are never reused or persisted.
func NewNodeBase(name string) NodeBase {
	return NodeBase{
		Name:      name,
		Enabled:   true,
		Transform: core.NewTransform(),
		id:        nextNodeID(),
		category:  DefaultCategory,
	}
}

func (n *NodeBase) Base() *NodeBase { return n }

// ID is unique to the node for the life of the process.
func (n *NodeBase) ID() uint32 { return n.id }

func (n *NodeBase) Category() int { return n.category }

// SetCategory changes the render order key. A Graph only sorts on insert,
// so set it before adding the node.
func (n *NodeBase) SetCategory(category int) { n.category = category }

// Parent returns the base of the parent node, or nil for a root.
func (n *NodeBase) Parent() *NodeBase { return n.parent }

// Children returns the immediate children in render order. The slice must
// not be modified.
func (n *NodeBase) Children() []Node { return n.children }

// DescendantCount counts the children of the node and all of theirs.
func (n *NodeBase) DescendantCount() int {
	count := len(n.children)
	for _, child := range n.children {
		count += child.Base().DescendantCount()
	}
	return count
}

// AddChild appends child to the end of the child list. Attaching a node that
// already has a parent, or that would create a cycle, is a programming error
// and panics before anything is modified.
func (n *NodeBase) AddChild(child Node) {
	cb := child.Base()
	if cb.parent != nil {
		panic("scene: AddChild of a node that already has a parent")
	}
	for p := n; p != nil; p = p.parent {
		if p == cb {
			panic("scene: AddChild would make a node its own ancestor")
		}
	}
	cb.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child if it is an immediate child of n, compared by
// identity. Ownership of the removed subtree returns to the caller.
func (n *NodeBase) RemoveChild(child Node) (Node, bool) {
	nodes, ok := removeNode(n.children, child)
	if !ok {
		return nil, false
	}
	n.children = nodes
	child.Base().parent = nil
	return child, true
}

// Render renders every enabled child. Variants call it after drawing
// themselves.
func (n *NodeBase) Render(r Renderer) {
	for _, child := range n.children {
		if !child.Base().Enabled {
			continue
		}
		child.Render(r)
	}
}

// CloneInto finishes a clone: dst must be a shallow copy of n. It gets a
// fresh id, no parent and deep copies of n's children.
func (n *NodeBase) CloneInto(dst *NodeBase) {
	dst.id = nextNodeID()
	dst.parent = nil
	dst.children = nil
	for _, child := range n.children {
		dst.AddChild(child.Clone())
	}
}

// Walk visits n's subtree depth first, children in order. Returning false
// from fn skips the children of the visited node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(n Node, depth int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Base().children {
		walk(child, depth+1, fn)
	}
}

// removeNode deletes node from nodes in place; the vacated tail slot is
// zeroed so the removed subtree is not kept alive.
func removeNode(nodes []Node, node Node) ([]Node, bool) {
	target := node.Base()
	i := slices.IndexFunc(nodes, func(n Node) bool { return n.Base() == target })
	if i < 0 {
		return nodes, false
	}
	return slices.Delete(nodes, i, i+1), true
}
