package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/AMBE1203/xmpcore/debug"
	"github.com/AMBE1203/xmpcore/ir"
)

// Program is a compiled filter, reusable across trees.
type Program struct {
	prog *vm.Program
}

func Compile(src string) (*Program, error) {
	prog, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Program{prog: prog}, nil
}

// Matches runs the filter against a single node.
func (p *Program) Matches(n *ir.Node) (bool, error) {
	res, err := expr.Run(p.prog, nodeEnv(n))
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter result %T, want bool", res)
	}
	return b, nil
}

// Filter walks the tree under root and returns the property nodes the
// program matches. Schema nodes carry no property data and are skipped,
// but their subtrees are walked.
func Filter(root *ir.Node, src string) ([]*ir.Node, error) {
	prog, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var res []*ir.Node
	err = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n == root || n.Opts.IsSchema() {
			return true, nil
		}
		ok, err := prog.Matches(n)
		if err != nil {
			return false, err
		}
		if ok {
			if debug.Filter() {
				debug.Logf("filter %q matched %s\n", src, n.Path())
			}
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func nodeEnv(n *ir.Node) map[string]any {
	schema := ""
	for p := n; p != nil; p = p.Parent {
		if p.Opts.IsSchema() {
			schema = p.Value
			break
		}
	}
	return map[string]any{
		"path":   n.Path(),
		"name":   n.Name,
		"value":  n.Value,
		"schema": schema,
		"opts":   n.Opts.Names(),
		"lang": func() string {
			if q := n.FindQualifierByName(ir.LangName); q != nil {
				return q.Value
			}
			return ""
		},
		"hasQualifier": func(name string) bool {
			return n.FindQualifierByName(name) != nil
		},
		"isArray":     func() bool { return n.Opts.IsArray() },
		"isStruct":    func() bool { return n.Opts.IsStruct() },
		"isQualifier": func() bool { return n.Opts.IsQualifier() },
	}
}
