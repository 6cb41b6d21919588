package ir

import (
	"iter"
	"slices"
)

const (
	// ArrayItemName is the reserved name of array item nodes. Array items
	// are interchangeable, so the sibling uniqueness rule does not apply
	// to this name.
	ArrayItemName = "[]"
	// LangName is the reserved language qualifier name.
	LangName = "xml:lang"
	// TypeName is the reserved type qualifier name.
	TypeName = "rdf:type"
)

// Node is a vertex in a metadata tree. Every schema, property, struct field,
// array item, and qualifier is a Node; the role is carried by Opts.
type Node struct {
	Name  string
	Value string
	Opts  Options

	// Parent is a non-owning back reference, nil for the tree root. It is
	// overwritten when the node is attached elsewhere and must not be used
	// after the node is detached.
	Parent *Node

	children   []*Node // nil when absent
	qualifiers []*Node // nil when absent

	// Transient processing markers. The tree only stores them; the parser
	// and the alias resolver give them meaning.
	Implicit      bool
	HasAliases    bool
	Alias         bool
	HasValueChild bool
}

// New returns a detached node with the given name, value and options.
func New(name, value string, opts Options) *Node {
	return &Node{Name: name, Value: value, Opts: opts}
}

// AddChild appends child, which must not collide with an existing sibling
// name unless it is an array item.
func (n *Node) AddChild(child *Node) error {
	if err := n.assertNoChild(child.Name); err != nil {
		return err
	}
	child.Parent = n
	n.children = append(n.children, child)
	return nil
}

// InsertChild inserts child at the 1-based position pos, shifting later
// children right. pos may be ChildCount()+1 to append.
func (n *Node) InsertChild(pos int, child *Node) error {
	if pos < 1 || pos > len(n.children)+1 {
		return &PositionError{Pos: pos, Count: len(n.children)}
	}
	if err := n.assertNoChild(child.Name); err != nil {
		return err
	}
	child.Parent = n
	n.children = slices.Insert(n.children, pos-1, child)
	return nil
}

// ReplaceChild overwrites the child at the 1-based position pos. It does not
// re-check sibling uniqueness; callers doing internal restructuring are
// trusted to preserve it.
func (n *Node) ReplaceChild(pos int, child *Node) error {
	if pos < 1 || pos > len(n.children) {
		return &PositionError{Pos: pos, Count: len(n.children)}
	}
	child.Parent = n
	n.children[pos-1] = child
	return nil
}

// RemoveChild removes the child at the 1-based position pos.
func (n *Node) RemoveChild(pos int) error {
	if pos < 1 || pos > len(n.children) {
		return &PositionError{Pos: pos, Count: len(n.children)}
	}
	n.children = slices.Delete(n.children, pos-1, pos)
	n.cleanupChildren()
	return nil
}

// RemoveChildNode removes child by identity. Unknown nodes are ignored.
func (n *Node) RemoveChildNode(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	n.cleanupChildren()
}

// RemoveChildren discards all children, reverting to the absent state.
func (n *Node) RemoveChildren() {
	n.children = nil
}

// GetChild returns the child at the 1-based position pos.
func (n *Node) GetChild(pos int) (*Node, error) {
	if pos < 1 || pos > len(n.children) {
		return nil, &PositionError{Pos: pos, Count: len(n.children)}
	}
	return n.children[pos-1], nil
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// FindChildByName returns the first child named name, or nil.
func (n *Node) FindChildByName(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// Children iterates over the current children in order. The sequence is
// restartable; mutating the node while iterating is not supported.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Clear releases the node's name, value, options, children, qualifiers and
// markers, returning it to a detached empty state.
func (n *Node) Clear() {
	*n = Node{}
}

// Clone returns a deep copy of the node. The copy is detached: its Parent is
// nil regardless of the original's position.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	res.Parent = nil
	return res
}

// CloneTo deep-copies the node into dst, reusing dst's storage where it can.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Name = n.Name
	dst.Value = n.Value
	dst.Opts = n.Opts
	dst.Parent = n.Parent
	dst.Implicit = n.Implicit
	dst.HasAliases = n.HasAliases
	dst.Alias = n.Alias
	dst.HasValueChild = n.HasValueChild
	dst.children = cloneNodes(n.children, dst)
	dst.qualifiers = cloneNodes(n.qualifiers, dst)
	return dst
}

func cloneNodes(src []*Node, parent *Node) []*Node {
	if src == nil {
		return nil
	}
	res := make([]*Node, len(src))
	for i, c := range src {
		cc := &Node{}
		c.CloneTo(cc)
		cc.Parent = parent
		res[i] = cc
	}
	return res
}

// Root returns the topmost ancestor of the node.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the subtree rooted at n in depth-first order, calling f before
// (isPost false) and after (isPost true) each node's children and
// qualifiers. Returning false from the pre call skips the descent.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, q := range n.qualifiers {
			if err := q.Visit(f); err != nil {
				return err
			}
		}
		for _, c := range n.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) assertNoChild(name string) error {
	if name == ArrayItemName {
		return nil
	}
	if n.FindChildByName(name) != nil {
		return &DuplicateNameError{Name: name}
	}
	return nil
}

// cleanupChildren reverts the child sequence to the absent state when the
// last child has been removed.
func (n *Node) cleanupChildren() {
	if len(n.children) == 0 {
		n.children = nil
	}
}
