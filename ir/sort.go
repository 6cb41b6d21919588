package ir

import (
	"slices"
	"strings"
)

// Sort canonicalizes the subtree rooted at n: qualifiers beyond the reserved
// xml:lang / rdf:type prefix and the children of non-array nodes are put
// into a deterministic, name-based order, recursively. Array children keep
// their order, as it is semantically significant. Sort is idempotent.
//
// Schema nodes compare by Value (the namespace URI), every other node by
// Name, byte-wise. A sorted node missing its key field yields a
// CompareStateError; Sort does not repair malformed trees.
func (n *Node) Sort() error {
	i := 0
	for i < len(n.qualifiers) {
		q := n.qualifiers[i]
		if q.Name != LangName && q.Name != TypeName {
			break
		}
		if err := q.Sort(); err != nil {
			return err
		}
		i++
	}
	if err := sortNodes(n.qualifiers[i:]); err != nil {
		return err
	}
	for _, q := range n.qualifiers[i:] {
		if err := q.Sort(); err != nil {
			return err
		}
	}
	if !n.Opts.IsArray() {
		if err := sortNodes(n.children); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := c.Sort(); err != nil {
			return err
		}
	}
	return nil
}

// sortNodes orders ns in place by sort key. It validates every key up front,
// then sorts a parallel buffer and writes it back, so a failed validation
// leaves the sequence untouched.
func sortNodes(ns []*Node) error {
	if len(ns) < 2 {
		// nothing is compared, so a missing key cannot be observed
		return nil
	}
	for _, x := range ns {
		if _, err := sortKey(x); err != nil {
			return err
		}
	}
	buf := make([]*Node, len(ns))
	copy(buf, ns)
	slices.SortStableFunc(buf, func(a, b *Node) int {
		ka, _ := sortKey(a)
		kb, _ := sortKey(b)
		return strings.Compare(ka, kb)
	})
	copy(ns, buf)
	return nil
}

func sortKey(n *Node) (string, error) {
	if n.Opts.IsSchema() {
		if n.Value == "" {
			return "", &CompareStateError{Schema: true}
		}
		return n.Value, nil
	}
	if n.Name == "" {
		return "", &CompareStateError{}
	}
	return n.Name, nil
}
