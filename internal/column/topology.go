package column

// Node is one leaf column's resolved position.
type Node struct {
	Depth  int // number of enclosing groups
	Index  int // ordinal among leaves
	Column *Column
}

// Group is a column with children and the range of leaves it spans.
type Group struct {
	Column      *Column
	Depth       int
	First, Last int // leaf indexes, inclusive
}

// Topology is the flattened view of a column list.
type Topology struct {
	// MaxDepth is 1 + the deepest leaf depth, or 0 with no leaves.
	MaxDepth int
	Leaves   []Node
	Groups   []Group
}

// Resolve flattens columns depth-first in declaration order. A column
// with children contributes no leaf of its own; a column with an empty
// children list is a leaf. A column nested inside itself is skipped at the
// point where it would recurse. The result is computed from scratch on
// every call.
func Resolve(columns []*Column) Topology {
	r := resolver{ancestors: make(map[*Column]bool)}
	for _, c := range columns {
		r.visit(c, 0)
	}
	return r.topo
}

type resolver struct {
	topo      Topology
	ancestors map[*Column]bool
}

func (r *resolver) visit(c *Column, depth int) {
	if c == nil || r.ancestors[c] {
		return
	}
	t := &r.topo
	if c.IsLeaf() {
		t.Leaves = append(t.Leaves, Node{Depth: depth, Index: len(t.Leaves), Column: c})
		t.MaxDepth = max(t.MaxDepth, depth+1)
		return
	}

	r.ancestors[c] = true
	defer delete(r.ancestors, c)

	gi := len(t.Groups)
	t.Groups = append(t.Groups, Group{Column: c, Depth: depth, First: len(t.Leaves)})
	for _, child := range c.Children.Items() {
		r.visit(child, depth+1)
	}
	t.Groups[gi].Last = len(t.Leaves) - 1
}

// Columns returns the leaf columns in order.
func (t Topology) Columns() []*Column {
	out := make([]*Column, len(t.Leaves))
	for i, n := range t.Leaves {
		out[i] = n.Column
	}
	return out
}
