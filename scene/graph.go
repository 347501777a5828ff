package scene

import "sort"

// Graph owns an ordered list of root nodes, kept sorted by category.
type Graph struct {
	nodes []Node
}

func NewGraph() *Graph {
	return &Graph{}
}

// AddNode inserts a root node after every root of a lower or equal
// category. The node must not have a parent.
func (g *Graph) AddNode(n Node) {
	if n.Base().parent != nil {
		panic("scene: AddNode of a node that has a parent")
	}
	for _, existing := range g.nodes {
		if existing.Base() == n.Base() {
			panic("scene: AddNode of a node already in the graph")
		}
	}
	category := n.Base().category
	i := sort.Search(len(g.nodes), func(i int) bool {
		return g.nodes[i].Base().category > category
	})
	g.nodes = append(g.nodes, nil)
	copy(g.nodes[i+1:], g.nodes[i:])
	g.nodes[i] = n
}

// RemoveNode removes a root node, compared by identity. It reports false if
// n is not a root of the graph.
func (g *Graph) RemoveNode(n Node) bool {
	nodes, ok := removeNode(g.nodes, n)
	g.nodes = nodes
	return ok
}

// Nodes returns the root nodes in render order. The slice must not be
// modified.
func (g *Graph) Nodes() []Node { return g.nodes }

// NodeCount counts every node in the graph, enabled or not.
func (g *Graph) NodeCount() int {
	count := len(g.nodes)
	for _, n := range g.nodes {
		count += n.Base().DescendantCount()
	}
	return count
}

// Render renders every enabled root and, through them, their enabled
// subtrees.
func (g *Graph) Render(r Renderer) {
	for _, n := range g.nodes {
		if !n.Base().Enabled {
			continue
		}
		n.Render(r)
	}
}

// Walk visits every node depth first in render order.
func (g *Graph) Walk(fn func(n Node, depth int) bool) {
	for _, n := range g.nodes {
		Walk(n, fn)
	}
}

// Find returns the node with the given session id.
func (g *Graph) Find(id uint32) Node {
	var found Node
	g.Walk(func(n Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Base().ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

func (g *Graph) Clear() {
	g.nodes = nil
}
