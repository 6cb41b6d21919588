package xmpcore

import (
	"errors"
	"fmt"

	"github.com/AMBE1203/xmpcore/ir"
	"github.com/AMBE1203/xmpcore/ir/ppath"
)

// GetProperty returns the value and options of the property at path under
// the schema identified by schemaURI. Composite properties return an empty
// value with their structure options.
func (m *Meta) GetProperty(schemaURI, path string) (string, ir.Options, error) {
	node, err := m.resolve(schemaURI, path)
	if err != nil {
		return "", 0, err
	}
	return node.Value, node.Opts, nil
}

// PropertyExists reports whether path resolves under schemaURI.
func (m *Meta) PropertyExists(schemaURI, path string) bool {
	_, err := m.resolve(schemaURI, path)
	return err == nil
}

// SetProperty sets the property at path to value, creating the schema node
// and any missing interior nodes. Created interior nodes are flagged
// Implicit. If the operation fails, everything it created is removed again.
func (m *Meta) SetProperty(schemaURI, path, value string, opts ir.Options) error {
	node, unwind, err := m.resolveOrCreate(schemaURI, path, opts)
	if err != nil {
		return err
	}
	if node.Opts.IsComposite() && value != "" {
		unwind()
		return fmt.Errorf("%w: %s", ErrCompositeValue, path)
	}
	node.Value = value
	node.Opts |= opts
	node.Implicit = false
	return nil
}

// DeleteProperty removes the property at path. Deleting a property that
// does not exist is a no-op. A schema left without properties is removed
// with it.
func (m *Meta) DeleteProperty(schemaURI, path string) error {
	node, err := m.resolve(schemaURI, path)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil
		}
		return err
	}
	detach(node)
	if schema := m.findSchema(schemaURI); schema != nil && !schema.HasChildren() {
		m.root.RemoveChildNode(schema)
	}
	return nil
}

func detach(node *ir.Node) {
	parent := node.Parent
	if parent == nil {
		return
	}
	if node.Opts.IsQualifier() {
		parent.RemoveQualifier(node)
	} else {
		parent.RemoveChildNode(node)
	}
}

// resolve walks path under schemaURI without creating anything.
func (m *Meta) resolve(schemaURI, path string) (*ir.Node, error) {
	schema := m.findSchema(schemaURI)
	if schema == nil {
		return nil, notFound(schemaURI, path)
	}
	node, err := schema.GetPath(path)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, notFound(schemaURI, path)
	}
	return node, nil
}

// resolveOrCreate walks path under schemaURI, creating missing nodes. It
// returns the target node and an unwind func removing everything created.
func (m *Meta) resolveOrCreate(schemaURI, path string, finalOpts ir.Options) (*ir.Node, func(), error) {
	pp, err := ppath.Parse(path)
	if err != nil {
		return nil, nil, err
	}
	schema, created, err := m.ensureSchema(schemaURI)
	if err != nil {
		return nil, nil, err
	}
	var firstCreated *ir.Node
	if created {
		firstCreated = schema
	}
	unwind := func() {
		if firstCreated != nil {
			detach(firstCreated)
		}
	}

	cur := schema
	for p := pp; p != nil; p = p.Next {
		last := p.Next == nil
		next, madeNew, err := createStep(cur, p, interiorOpts(p.Next, finalOpts, last))
		if err != nil {
			unwind()
			return nil, nil, err
		}
		if madeNew {
			next.Implicit = !last
			if firstCreated == nil {
				firstCreated = next
			}
		}
		cur = next
	}
	return cur, unwind, nil
}

// interiorOpts picks structure options for a node created along a path:
// the final node takes the caller's options, interior nodes take the form
// the following step requires.
func interiorOpts(next *ppath.PPath, finalOpts ir.Options, last bool) ir.Options {
	if last {
		return finalOpts
	}
	switch {
	case next.Index != nil || next.Last || next.Sel != nil:
		return ir.OptArray | ir.OptArrayOrdered
	case next.Field != nil:
		return ir.OptStruct
	default:
		return 0
	}
}

func createStep(cur *ir.Node, p *ppath.PPath, opts ir.Options) (*ir.Node, bool, error) {
	switch {
	case p.Field != nil:
		if cur.Opts.IsArray() {
			return nil, false, fmt.Errorf("array %q has items, not field %q", cur.Name, *p.Field)
		}
		if next := cur.FindChildByName(*p.Field); next != nil {
			return next, false, nil
		}
		if !cur.Opts.IsStruct() && !cur.Opts.IsSchema() {
			if cur.Value != "" {
				return nil, false, fmt.Errorf("%q is not a struct", cur.Name)
			}
			// upgrade a fresh leaf to a struct
			cur.Opts |= ir.OptStruct
		}
		next := ir.New(*p.Field, "", opts)
		if err := cur.AddChild(next); err != nil {
			return nil, false, err
		}
		return next, true, nil
	case p.Index != nil:
		if !cur.Opts.IsArray() {
			return nil, false, fmt.Errorf("%q is not an array", cur.Name)
		}
		if *p.Index == cur.ChildCount()+1 {
			next := ir.New(ir.ArrayItemName, "", opts)
			if err := cur.AddChild(next); err != nil {
				return nil, false, err
			}
			return next, true, nil
		}
		next, err := cur.GetChild(*p.Index)
		return next, false, err
	case p.Last:
		if !cur.Opts.IsArray() {
			return nil, false, fmt.Errorf("%q is not an array", cur.Name)
		}
		if cur.ChildCount() == 0 {
			next := ir.New(ir.ArrayItemName, "", opts)
			if err := cur.AddChild(next); err != nil {
				return nil, false, err
			}
			return next, true, nil
		}
		next, err := cur.GetChild(cur.ChildCount())
		return next, false, err
	case p.Qual != nil:
		if next := cur.FindQualifierByName(*p.Qual); next != nil {
			return next, false, nil
		}
		next := ir.New(*p.Qual, "", opts)
		if err := cur.AddQualifier(next); err != nil {
			return nil, false, err
		}
		return next, true, nil
	case p.Sel != nil:
		if !cur.Opts.IsArray() {
			return nil, false, fmt.Errorf("%q is not an array", cur.Name)
		}
		for item := range cur.Children() {
			if q := item.FindQualifierByName(p.Sel.Name); q != nil && q.Value == p.Sel.Value {
				return item, false, nil
			}
		}
		next := ir.New(ir.ArrayItemName, "", opts)
		if err := cur.AddChild(next); err != nil {
			return nil, false, err
		}
		if err := next.AddQualifier(ir.New(p.Sel.Name, p.Sel.Value, 0)); err != nil {
			return nil, false, err
		}
		return next, true, nil
	default:
		return nil, false, fmt.Errorf("empty path step")
	}
}
