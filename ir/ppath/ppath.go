// Package ppath implements the property path mini-language used to address
// nodes in a metadata tree.
//
// A path is a chain of segments:
//
//   - "ns:Prop"            object/struct child by name
//   - "ns:Prop/ns:Field"   nested struct field
//   - "ns:Prop[3]"         array item by 1-based index
//   - "ns:Prop[last()]"    last array item
//   - "ns:Prop/?xml:lang"  qualifier by name
//   - `ns:Prop[?xml:lang="en"]`  array item selected by qualifier value
//
// Selector values use Go string literal syntax.
package ppath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// PPath is one segment of a parsed property path, linked to the next.
// Exactly one of Field, Index, Last, Qual, Sel is set per segment.
type PPath struct {
	Field *string   // child by name
	Index *int      // 1-based array item index
	Last  bool      // [last()]
	Qual  *string   // qualifier by name
	Sel   *Selector // array item by qualifier value
	Next  *PPath
}

// Selector addresses an array item by one of its qualifiers.
type Selector struct {
	Name  string
	Value string
}

// String returns the canonical path string for the segment chain.
func (p *PPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('/')
			}
			buf.WriteString(*x.Field)
		case x.Qual != nil:
			if buf.Len() > 0 {
				buf.WriteByte('/')
			}
			buf.WriteByte('?')
			buf.WriteString(*x.Qual)
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case x.Last:
			buf.WriteString("[last()]")
		case x.Sel != nil:
			fmt.Fprintf(buf, "[?%s=%s]", x.Sel.Name, strconv.Quote(x.Sel.Value))
		}
	}
	return buf.String()
}

// Parse parses a property path string. The empty path parses to nil.
func Parse(path string) (*PPath, error) {
	if path == "" {
		return nil, nil
	}
	var (
		root *PPath
		last *PPath
	)
	link := func(seg *PPath) {
		if root == nil {
			root = seg
			last = seg
			return
		}
		last.Next = seg
		last = seg
	}
	for _, step := range strings.Split(path, "/") {
		if step == "" {
			return nil, fmt.Errorf("empty step in path %q", path)
		}
		name, brackets, err := splitStep(step)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", path, err)
		}
		if name != "" {
			if name[0] == '?' {
				if len(name) == 1 {
					return nil, fmt.Errorf("path %q: empty qualifier name", path)
				}
				q := name[1:]
				link(&PPath{Qual: &q})
			} else {
				f := name
				link(&PPath{Field: &f})
			}
		} else if len(brackets) == 0 {
			return nil, fmt.Errorf("path %q: empty step", path)
		}
		for _, b := range brackets {
			seg, err := parseBracket(b)
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", path, err)
			}
			link(seg)
		}
	}
	return root, nil
}

// splitStep separates the leading name of a step from its bracket suffixes.
func splitStep(step string) (name string, brackets []string, err error) {
	i := strings.IndexByte(step, '[')
	if i == -1 {
		return step, nil, nil
	}
	name = step[:i]
	rest := step[i:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("unexpected %q after index", rest)
		}
		j := closingBracket(rest)
		if j == -1 {
			return "", nil, fmt.Errorf("unclosed '[' in step %q", step)
		}
		brackets = append(brackets, rest[1:j])
		rest = rest[j+1:]
	}
	return name, brackets, nil
}

// closingBracket finds the index of the ']' matching the leading '[',
// skipping over quoted selector values.
func closingBracket(s string) int {
	inQuote := false
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if inQuote {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case ']':
			return i
		}
	}
	return -1
}

func parseBracket(b string) (*PPath, error) {
	if b == "" {
		return nil, fmt.Errorf("empty index")
	}
	if b == "last()" {
		return &PPath{Last: true}, nil
	}
	if b[0] == '?' {
		eq := strings.IndexByte(b, '=')
		if eq == -1 {
			return nil, fmt.Errorf("selector %q missing '='", b)
		}
		name := b[1:eq]
		if name == "" {
			return nil, fmt.Errorf("selector %q missing qualifier name", b)
		}
		val, err := strconv.Unquote(b[eq+1:])
		if err != nil {
			return nil, fmt.Errorf("selector %q: bad value: %w", b, err)
		}
		return &PPath{Sel: &Selector{Name: name, Value: val}}, nil
	}
	u, err := strconv.ParseUint(b, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid array index %q: %w", b, err)
	}
	if u == 0 {
		return nil, fmt.Errorf("array index is 1-based, got 0")
	}
	idx := int(u)
	return &PPath{Index: &idx}, nil
}

func (p *PPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PPath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	if pp == nil {
		*p = PPath{}
		return nil
	}
	*p = *pp
	return nil
}
