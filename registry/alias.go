package registry

import "fmt"

// ArrayForm says how an alias maps onto its actual property.
type ArrayForm int

const (
	// Direct aliases map property to property.
	Direct ArrayForm = iota
	// ToItem aliases map a simple property to the first item of an array.
	ToItem
)

type aliasKey struct {
	ns   string
	prop string
}

// AliasInfo describes the actual property an alias stands for.
type AliasInfo struct {
	NS   string
	Prop string
	Form ArrayForm
}

// RegisterAlias records that (aliasNS, aliasProp) is an alternate spelling
// of (actualNS, actualProp). Chained aliases are rejected: the actual side
// must not itself be an alias.
func (r *Registry) RegisterAlias(aliasNS, aliasProp, actualNS, actualProp string, form ArrayForm) error {
	if aliasNS == "" || aliasProp == "" || actualNS == "" || actualProp == "" {
		return fmt.Errorf("incomplete alias registration %s:%s -> %s:%s",
			aliasNS, aliasProp, actualNS, actualProp)
	}
	if _, ok := r.aliases[aliasKey{ns: actualNS, prop: actualProp}]; ok {
		return fmt.Errorf("alias target %s %s is itself an alias", actualNS, actualProp)
	}
	key := aliasKey{ns: aliasNS, prop: aliasProp}
	if prev, ok := r.aliases[key]; ok {
		return fmt.Errorf("alias %s %s already registered to %s %s",
			aliasNS, aliasProp, prev.NS, prev.Prop)
	}
	r.aliases[key] = &AliasInfo{NS: actualNS, Prop: actualProp, Form: form}
	return nil
}

// LookupAlias returns the actual property for an alias, or nil when
// (ns, prop) is not an alias.
func (r *Registry) LookupAlias(ns, prop string) *AliasInfo {
	return r.aliases[aliasKey{ns: ns, prop: prop}]
}
