package ir

import (
	"fmt"

	"github.com/AMBE1203/xmpcore/ir/ppath"
)

// Path returns the property path of the node relative to the tree root.
// Schema nodes render as their namespace URI, array items as their 1-based
// index, qualifiers with a leading '?'.
func (n *Node) Path() string {
	if n.Parent == nil {
		return ""
	}
	prefix := n.Parent.Path()
	if n.Opts.IsQualifier() {
		if prefix == "" {
			return "?" + n.Name
		}
		return prefix + "/?" + n.Name
	}
	if n.Parent.Opts.IsArray() {
		pos := 0
		for i, c := range n.Parent.children {
			if c == n {
				pos = i + 1
				break
			}
		}
		return fmt.Sprintf("%s[%d]", prefix, pos)
	}
	seg := n.Name
	if n.Opts.IsSchema() {
		seg = n.Value
	}
	if prefix == "" {
		return seg
	}
	return prefix + "/" + seg
}

// GetPath navigates from n along a property path and returns the addressed
// node. A well-formed path that addresses nothing returns (nil, nil); a path
// whose steps do not match the node kinds along the way returns an error.
func (n *Node) GetPath(path string) (*Node, error) {
	p, err := ppath.Parse(path)
	if err != nil {
		return nil, err
	}
	return n.getPath(p)
}

func (n *Node) getPath(p *ppath.PPath) (*Node, error) {
	res := n
	for p != nil {
		switch {
		case p.Field != nil:
			c := res.FindChildByName(*p.Field)
			if c == nil {
				return nil, nil
			}
			res = c
		case p.Qual != nil:
			q := res.FindQualifierByName(*p.Qual)
			if q == nil {
				return nil, nil
			}
			res = q
		case p.Index != nil:
			if !res.Opts.IsArray() {
				return nil, fmt.Errorf("index step on non-array node %q", res.Name)
			}
			c, err := res.GetChild(*p.Index)
			if err != nil {
				return nil, err
			}
			res = c
		case p.Last:
			if !res.Opts.IsArray() {
				return nil, fmt.Errorf("last() step on non-array node %q", res.Name)
			}
			if res.ChildCount() == 0 {
				return nil, nil
			}
			c, err := res.GetChild(res.ChildCount())
			if err != nil {
				return nil, err
			}
			res = c
		case p.Sel != nil:
			if !res.Opts.IsArray() {
				return nil, fmt.Errorf("selector step on non-array node %q", res.Name)
			}
			item := res.findQualifiedItem(p.Sel.Name, p.Sel.Value)
			if item == nil {
				return nil, nil
			}
			res = item
		}
		p = p.Next
	}
	return res, nil
}

// findQualifiedItem returns the first array item carrying a qualifier with
// the given name and value, or nil.
func (n *Node) findQualifiedItem(qualName, qualValue string) *Node {
	for _, c := range n.children {
		q := c.FindQualifierByName(qualName)
		if q != nil && q.Value == qualValue {
			return c
		}
	}
	return nil
}
