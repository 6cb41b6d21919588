// Package xmpcore provides a high level API over metadata trees.
//
// A Meta wraps a root ir.Node whose children are schema nodes, one per
// namespace. Properties are addressed by schema namespace URI plus a path
// in the ir/ppath syntax, relative to the schema:
//
//	meta := xmpcore.NewMeta()
//	meta.Registry().RegisterNamespace("http://ns.example.com/1/", "ns1")
//	err := meta.SetProperty("http://ns.example.com/1/", "ns1:Title", "Hello", 0)
//
// Set operations create missing interior nodes and unwind them again if the
// operation fails partway, so a failed call never leaves partial structure
// behind.
//
// # Related Packages
//
//   - github.com/AMBE1203/xmpcore/ir - IR representation
//   - github.com/AMBE1203/xmpcore/registry - namespaces and aliases
//   - github.com/AMBE1203/xmpcore/parse - parse listing text
//   - github.com/AMBE1203/xmpcore/encode - encode listing text
package xmpcore

import (
	"errors"
	"fmt"

	"github.com/AMBE1203/xmpcore/encode"
	"github.com/AMBE1203/xmpcore/ir"
	"github.com/AMBE1203/xmpcore/registry"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrCompositeValue   = errors.New("composite property cannot carry a value")
)

type Meta struct {
	root *ir.Node
	reg  *registry.Registry
}

func NewMeta() *Meta {
	return &Meta{root: &ir.Node{}, reg: registry.New()}
}

// FromNode wraps an existing tree. The node's children must be schema
// nodes, as produced by parse.Parse.
func FromNode(root *ir.Node) *Meta {
	return &Meta{root: root, reg: registry.New()}
}

func (m *Meta) Root() *ir.Node               { return m.root }
func (m *Meta) Registry() *registry.Registry { return m.reg }

func (m *Meta) Clone() *Meta {
	return &Meta{root: m.root.Clone(), reg: m.reg}
}

// Sort canonicalizes the tree in place.
func (m *Meta) Sort() error { return m.root.Sort() }

// ResolveAliases rewrites alias properties onto their actuals, per the
// registry's alias table.
func (m *Meta) ResolveAliases() error {
	return registry.ResolveAliases(m.root, m.reg)
}

func (m *Meta) String() string {
	return encode.MustString(m.root)
}

// findSchema returns the schema child for a namespace URI, or nil.
func (m *Meta) findSchema(uri string) *ir.Node {
	for schema := range m.root.Children() {
		if schema.Opts.IsSchema() && schema.Value == uri {
			return schema
		}
	}
	return nil
}

// ensureSchema returns the schema child for uri, creating it with the
// registered prefix when absent. The URI must be registered.
func (m *Meta) ensureSchema(uri string) (*ir.Node, bool, error) {
	if schema := m.findSchema(uri); schema != nil {
		return schema, false, nil
	}
	prefix, err := m.reg.PrefixForURI(uri)
	if err != nil {
		return nil, false, err
	}
	schema := ir.New(prefix, uri, ir.OptSchemaNode)
	schema.Implicit = true
	if err := m.root.AddChild(schema); err != nil {
		return nil, false, err
	}
	return schema, true, nil
}

func notFound(uri, path string) error {
	return fmt.Errorf("%w: %s in %s", ErrPropertyNotFound, path, uri)
}
