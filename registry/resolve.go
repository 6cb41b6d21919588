package registry

import (
	"fmt"

	"github.com/AMBE1203/xmpcore/debug"
	"github.com/AMBE1203/xmpcore/ir"
)

// ResolveAliases moves alias properties in root onto their actual
// properties. root is a tree whose children are schema nodes; property
// names are matched against the alias table by schema URI and node name.
//
// An alias whose actual property is absent is moved (Direct) or becomes the
// first item of the actual array (ToItem). When the actual already exists
// the actual wins and the alias is dropped. Actual nodes that absorbed an
// alias are marked Alias and their schema HasAliases.
func ResolveAliases(root *ir.Node, reg *Registry) error {
	// collect up front, resolution may add schema nodes to root
	var schemas []*ir.Node
	for schema := range root.Children() {
		if schema.Opts.IsSchema() {
			schemas = append(schemas, schema)
		}
	}
	for _, schema := range schemas {
		// collect first, resolution mutates the child list
		var aliased []*ir.Node
		for prop := range schema.Children() {
			if reg.LookupAlias(schema.Value, prop.Name) != nil {
				aliased = append(aliased, prop)
			}
		}
		for _, prop := range aliased {
			info := reg.LookupAlias(schema.Value, prop.Name)
			if debug.Alias() {
				debug.Logf("alias %s on %s -> %s %s\n", prop.Name, schema.Value, info.NS, info.Prop)
			}
			if err := resolveAlias(root, reg, schema, prop, info); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveAlias(root *ir.Node, reg *Registry, schema, prop *ir.Node, info *AliasInfo) error {
	actualSchema, err := findSchema(root, reg, info.NS)
	if err != nil {
		return err
	}
	actual := actualSchema.FindChildByName(info.Prop)
	schema.RemoveChildNode(prop)

	switch info.Form {
	case ToItem:
		if actual == nil {
			actual = ir.New(info.Prop, "", ir.OptArray|ir.OptArrayOrdered)
			if err := actualSchema.AddChild(actual); err != nil {
				return err
			}
		}
		if !actual.Opts.IsArray() {
			return fmt.Errorf("alias %s maps to item of non-array %s", prop.Name, info.Prop)
		}
		if !actual.HasChildren() {
			item := prop.Clone()
			item.Name = ir.ArrayItemName
			if err := actual.AddChild(item); err != nil {
				return err
			}
		}
	default:
		if actual == nil {
			actual = prop.Clone()
			actual.Name = info.Prop
			if err := actualSchema.AddChild(actual); err != nil {
				return err
			}
		}
	}
	actual.Alias = true
	actualSchema.HasAliases = true
	return nil
}

// findSchema returns the schema node for uri, creating one with the
// registered prefix when absent.
func findSchema(root *ir.Node, reg *Registry, uri string) (*ir.Node, error) {
	for schema := range root.Children() {
		if schema.Opts.IsSchema() && schema.Value == uri {
			return schema, nil
		}
	}
	prefix, err := reg.PrefixForURI(uri)
	if err != nil {
		return nil, err
	}
	schema := ir.New(prefix, uri, ir.OptSchemaNode)
	if err := root.AddChild(schema); err != nil {
		return nil, err
	}
	return schema, nil
}
