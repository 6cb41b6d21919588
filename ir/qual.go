package ir

import (
	"iter"
	"slices"
)

// AddQualifier attaches q to the node. The qualifier is marked OptQualifier
// and the owner's bookkeeping flags are updated. Reserved qualifiers take
// their mandated positions: xml:lang first, rdf:type right after it (or
// first when no xml:lang exists); all others append in insertion order.
func (n *Node) AddQualifier(q *Node) error {
	if q.Name != ArrayItemName && n.FindQualifierByName(q.Name) != nil {
		return &DuplicateNameError{Name: q.Name, Qualifier: true}
	}
	q.Parent = n
	q.Opts |= OptQualifier
	n.Opts |= OptHasQualifiers
	switch q.Name {
	case LangName:
		n.Opts |= OptHasLanguage
		n.qualifiers = slices.Insert(n.qualifiers, 0, q)
	case TypeName:
		n.Opts |= OptHasType
		pos := 0
		if n.Opts.HasLanguage() {
			pos = 1
		}
		n.qualifiers = slices.Insert(n.qualifiers, pos, q)
	default:
		n.qualifiers = append(n.qualifiers, q)
	}
	return nil
}

// RemoveQualifier removes q by identity, clearing the language or type flag
// when the corresponding reserved qualifier goes away. Unknown nodes are
// ignored.
func (n *Node) RemoveQualifier(q *Node) {
	i := slices.Index(n.qualifiers, q)
	if i < 0 {
		return
	}
	switch q.Name {
	case LangName:
		n.Opts &^= OptHasLanguage
	case TypeName:
		n.Opts &^= OptHasType
	}
	n.qualifiers = slices.Delete(n.qualifiers, i, i+1)
	if len(n.qualifiers) == 0 {
		n.Opts &^= OptHasQualifiers
		n.qualifiers = nil
	}
}

// RemoveQualifiers discards all qualifiers and the derived flags.
func (n *Node) RemoveQualifiers() {
	n.Opts &^= OptHasQualifiers | OptHasLanguage | OptHasType
	n.qualifiers = nil
}

// GetQualifier returns the qualifier at the 1-based position pos.
func (n *Node) GetQualifier(pos int) (*Node, error) {
	if pos < 1 || pos > len(n.qualifiers) {
		return nil, &PositionError{Pos: pos, Count: len(n.qualifiers), Qualifier: true}
	}
	return n.qualifiers[pos-1], nil
}

// QualifierCount returns the number of qualifiers.
func (n *Node) QualifierCount() int { return len(n.qualifiers) }

// FindQualifierByName returns the first qualifier named name, or nil.
func (n *Node) FindQualifierByName(name string) *Node {
	for _, q := range n.qualifiers {
		if q.Name == name {
			return q
		}
	}
	return nil
}

// HasQualifier reports whether the node has any qualifiers.
func (n *Node) HasQualifier() bool { return len(n.qualifiers) > 0 }

// Qualifiers iterates over the current qualifiers in order.
func (n *Node) Qualifiers() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, q := range n.qualifiers {
			if !yield(q) {
				return
			}
		}
	}
}
