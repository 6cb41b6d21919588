package ir

import "strings"

// Compare returns an integer comparing two nodes structurally: name, value,
// options, then qualifiers and children pairwise, shorter sequences first.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	if a.Opts != b.Opts {
		if a.Opts < b.Opts {
			return -1
		}
		return 1
	}
	if c := compareNodes(a.qualifiers, b.qualifiers); c != 0 {
		return c
	}
	return compareNodes(a.children, b.children)
}

func compareNodes(a, b []*Node) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether a and b are structurally identical, including the
// order of qualifiers and children. Canonicalize both sides with Sort first
// to compare up to ordering.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
