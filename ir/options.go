package ir

import (
	"fmt"
	"strings"
)

// Options is the set of role and structure flags carried by a Node. The
// flags are data: apart from the qualifier bookkeeping bits maintained by
// AddQualifier and friends, the tree assigns them no behavior.
type Options uint32

const (
	// OptURI marks a node whose value is a URI rather than plain text.
	OptURI Options = 1 << iota
	// OptHasQualifiers is set iff the node's qualifier sequence is non-empty.
	OptHasQualifiers
	// OptQualifier marks a node that is attached as a qualifier.
	OptQualifier
	// OptHasLanguage is set iff an xml:lang qualifier is present.
	OptHasLanguage
	// OptHasType is set iff an rdf:type qualifier is present.
	OptHasType
	// OptStruct marks a node whose children are named fields.
	OptStruct
	// OptArray marks a node whose children are unnamed, ordered items.
	OptArray
	// OptArrayOrdered marks an array whose item order is meaningful.
	OptArrayOrdered
	// OptArrayAlternate marks an ordered array of alternatives.
	OptArrayAlternate
	// OptArrayAltText marks an alternate array of xml:lang tagged text items.
	OptArrayAltText
	// OptSchemaNode marks a top-level namespace node; Value holds the URI.
	OptSchemaNode
)

func (o Options) IsURI() bool         { return o&OptURI != 0 }
func (o Options) HasQualifiers() bool { return o&OptHasQualifiers != 0 }
func (o Options) IsQualifier() bool   { return o&OptQualifier != 0 }
func (o Options) HasLanguage() bool   { return o&OptHasLanguage != 0 }
func (o Options) HasType() bool       { return o&OptHasType != 0 }
func (o Options) IsStruct() bool      { return o&OptStruct != 0 }
func (o Options) IsArray() bool       { return o&OptArray != 0 }
func (o Options) IsOrdered() bool     { return o&OptArrayOrdered != 0 }
func (o Options) IsAlternate() bool   { return o&OptArrayAlternate != 0 }
func (o Options) IsAltText() bool     { return o&OptArrayAltText != 0 }
func (o Options) IsSchema() bool      { return o&OptSchemaNode != 0 }

// IsComposite reports whether the node is expected to have children.
func (o Options) IsComposite() bool { return o&(OptStruct|OptArray) != 0 }

var optNames = []struct {
	opt  Options
	name string
}{
	{OptURI, "uri"},
	{OptStruct, "struct"},
	{OptArray, "array"},
	{OptArrayOrdered, "ordered"},
	{OptArrayAlternate, "alternative"},
	{OptArrayAltText, "alt-text"},
	{OptSchemaNode, "schema"},
	{OptQualifier, "qualifier"},
	{OptHasQualifiers, "has-qualifiers"},
	{OptHasLanguage, "has-lang"},
	{OptHasType, "has-type"},
}

// Names returns the flag names set in o, in declaration order.
func (o Options) Names() []string {
	var res []string
	for _, on := range optNames {
		if o&on.opt != 0 {
			res = append(res, on.name)
		}
	}
	return res
}

func (o Options) String() string {
	names := o.Names()
	if names == nil {
		return "<none>"
	}
	return strings.Join(names, ",")
}

// ParseOptions parses a comma separated list of flag names as produced by
// Names. Array variant names imply OptArray.
func ParseOptions(v string) (Options, error) {
	var res Options
	if v == "" {
		return 0, nil
	}
	for _, name := range strings.Split(v, ",") {
		opt, err := parseOptName(strings.TrimSpace(name))
		if err != nil {
			return 0, err
		}
		res |= opt
	}
	if res&(OptArrayOrdered|OptArrayAlternate|OptArrayAltText) != 0 {
		res |= OptArray
	}
	if res.IsAltText() {
		res |= OptArrayAlternate | OptArrayOrdered
	} else if res.IsAlternate() {
		res |= OptArrayOrdered
	}
	return res, nil
}

func parseOptName(name string) (Options, error) {
	switch name {
	case "unordered":
		// plain bag, the array bit alone
		return OptArray, nil
	}
	for _, on := range optNames {
		if on.name == name {
			return on.opt, nil
		}
	}
	return 0, fmt.Errorf("unrecognized option %q", name)
}

func (o Options) MarshalText() ([]byte, error) {
	return []byte(strings.Join(o.Names(), ",")), nil
}

func (o *Options) UnmarshalText(d []byte) error {
	po, err := ParseOptions(string(d))
	if err != nil {
		return err
	}
	*o = po
	return nil
}
