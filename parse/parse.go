package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AMBE1203/xmpcore/debug"
	"github.com/AMBE1203/xmpcore/ir"
)

// ErrParse wraps every error returned by Parse.
var ErrParse = errors.New("parse error")

// Pos records where a node was declared in the input.
type Pos struct {
	Line int
}

func (p Pos) String() string { return fmt.Sprintf("line %d", p.Line) }

// Parse parses listing text into a tree rooted at a nameless node whose
// children are the declared schema nodes.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{opts: pOpts, root: &ir.Node{}}
	for i, line := range strings.Split(string(d), "\n") {
		if err := p.line(i+1, line); err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %d schemas:\n%v", p.root.ChildCount(), p.root)
	}
	return p.root, nil
}

type parser struct {
	opts *parseOpts
	root *ir.Node
	// stack[i] is the most recent node at depth i
	stack []*ir.Node
}

func (p *parser) line(lineNo int, line string) error {
	depth, body, err := indent(line)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
	}
	if body == "" || body[0] == '#' {
		return nil
	}
	if depth > len(p.stack) {
		return fmt.Errorf("%w: line %d: indented %d levels under a parent at %d",
			ErrParse, lineNo, depth, len(p.stack)-1)
	}

	isQual := false
	if strings.HasPrefix(body, "? ") {
		isQual = true
		body = strings.TrimSpace(body[2:])
	}

	node, err := parseNodeLine(body)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
	}

	switch {
	case depth == 0 && node.Opts.IsSchema():
		if isQual {
			return fmt.Errorf("%w: line %d: schema declaration cannot be a qualifier", ErrParse, lineNo)
		}
		if err := p.root.AddChild(node); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
		}
	case node.Opts.IsSchema():
		return fmt.Errorf("%w: line %d: schema declaration below top level", ErrParse, lineNo)
	case depth == 0:
		return fmt.Errorf("%w: line %d: expected schema declaration at top level, got %q", ErrParse, lineNo, body)
	default:
		parent := p.stack[depth-1]
		if isQual {
			if err := parent.AddQualifier(node); err != nil {
				return fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
			}
		} else {
			if !parent.Opts.IsComposite() && !parent.Opts.IsSchema() {
				return fmt.Errorf("%w: line %d: %q is not a struct or array", ErrParse, lineNo, parent.Name)
			}
			if parent.Opts.IsArray() != (node.Name == ir.ArrayItemName) {
				if parent.Opts.IsArray() {
					return fmt.Errorf("%w: line %d: array item must be named %q", ErrParse, lineNo, ir.ArrayItemName)
				}
				return fmt.Errorf("%w: line %d: item name %q outside an array", ErrParse, lineNo, node.Name)
			}
			if err := parent.AddChild(node); err != nil {
				return fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
			}
		}
	}

	p.stack = append(p.stack[:depth], node)
	if p.opts.positions != nil {
		p.opts.positions[node] = Pos{Line: lineNo}
	}
	return nil
}

// indent returns the depth of a line (2 spaces per level) and its body.
func indent(line string) (int, string, error) {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	body := strings.TrimRight(line[n:], " \t\r")
	if body == "" {
		return 0, "", nil
	}
	if strings.HasPrefix(body, "\t") {
		return 0, "", fmt.Errorf("tab indentation is not supported")
	}
	if n%2 != 0 {
		return 0, "", fmt.Errorf("odd indentation of %d spaces", n)
	}
	return n / 2, body, nil
}

// parseNodeLine parses a single declaration body:
//
//	@prefix = "uri"
//	name = "value"
//	name (flags)
//	name (flags) = "value"
func parseNodeLine(body string) (*ir.Node, error) {
	isSchema := false
	if body[0] == '@' {
		isSchema = true
		body = body[1:]
	}

	name, rest := splitName(body)
	if name == "" {
		return nil, fmt.Errorf("missing name in %q", body)
	}

	var opts ir.Options
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end == -1 {
			return nil, fmt.Errorf("unclosed '(' in %q", body)
		}
		po, err := ir.ParseOptions(rest[1:end])
		if err != nil {
			return nil, err
		}
		opts = po
		rest = strings.TrimSpace(rest[end+1:])
	}

	value := ""
	hasValue := false
	if strings.HasPrefix(rest, "=") {
		v, err := strconv.Unquote(strings.TrimSpace(rest[1:]))
		if err != nil {
			return nil, fmt.Errorf("bad value in %q: %w", body, err)
		}
		value = v
		hasValue = true
		rest = ""
	}
	if rest != "" {
		return nil, fmt.Errorf("trailing %q in declaration", rest)
	}

	if isSchema {
		if opts != 0 {
			return nil, fmt.Errorf("schema declaration %q cannot carry flags", name)
		}
		if !hasValue {
			return nil, fmt.Errorf("schema declaration %q missing URI", name)
		}
		return ir.New(name, value, ir.OptSchemaNode), nil
	}
	if opts.IsComposite() && hasValue {
		return nil, fmt.Errorf("composite %q cannot carry a value", name)
	}
	return ir.New(name, value, opts), nil
}

// splitName cuts the leading name off a declaration body. Names end at the
// first space, '(' or '='.
func splitName(body string) (string, string) {
	i := strings.IndexAny(body, " (=")
	if i == -1 {
		return body, ""
	}
	return body[:i], body[i:]
}
