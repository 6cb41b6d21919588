package ir

import (
	"encoding/json"
	"fmt"
)

// irBase is the JSON shape of a node. Parent references and the derived
// qualifier flags are rebuilt on unmarshal, so the form is self-contained.
type irBase struct {
	Name       string  `json:"name,omitempty"`
	Value      string  `json:"value,omitempty"`
	Opts       Options `json:"opts,omitempty"`
	Children   []*Node `json:"children,omitempty"`
	Qualifiers []*Node `json:"qualifiers,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&irBase{
		Name:       n.Name,
		Value:      n.Value,
		Opts:       n.Opts,
		Children:   n.children,
		Qualifiers: n.qualifiers,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Name = tmp.Name
	n.Value = tmp.Value
	n.Opts = tmp.Opts
	n.children = tmp.Children
	n.qualifiers = tmp.Qualifiers
	for _, c := range n.children {
		c.Parent = n
	}
	// qualifier flags are derived state; recompute rather than trust input
	n.Opts &^= OptHasQualifiers | OptHasLanguage | OptHasType
	for _, q := range n.qualifiers {
		q.Parent = n
		q.Opts |= OptQualifier
		n.Opts |= OptHasQualifiers
		switch q.Name {
		case LangName:
			n.Opts |= OptHasLanguage
		case TypeName:
			n.Opts |= OptHasType
		}
	}
	if err := checkQualifierOrder(n.qualifiers); err != nil {
		return err
	}
	if len(n.children) == 0 {
		n.children = nil
	}
	if len(n.qualifiers) == 0 {
		n.qualifiers = nil
	}
	return nil
}

// checkQualifierOrder rejects JSON input that places the reserved
// qualifiers away from their mandated positions.
func checkQualifierOrder(quals []*Node) error {
	for i, q := range quals {
		switch q.Name {
		case LangName:
			if i != 0 {
				return fmt.Errorf("%s qualifier at position %d, must be first", LangName, i+1)
			}
		case TypeName:
			if i > 1 {
				return fmt.Errorf("%s qualifier at position %d, must directly follow %s", TypeName, i+1, LangName)
			}
			if i == 1 && quals[0].Name != LangName {
				return fmt.Errorf("%s qualifier preceded by %q", TypeName, quals[0].Name)
			}
		}
	}
	return nil
}

// ToJSON renders the subtree rooted at n as indented JSON.
func ToJSON(n *Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// FromJSON parses a tree from its JSON form.
func FromJSON(d []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, err
	}
	return n, nil
}
