// Package registry tracks namespace prefixes and property aliases.
//
// A Registry maps schema namespace URIs to short prefixes and back. It is
// prepopulated with the common namespaces (rdf, xml, dc, xmp) and hands out
// collision-free prefixes for anything else. The alias table records
// properties that are alternate spellings of another property, and
// ResolveAliases rewrites a tree so only the actual properties remain.
//
// A Registry is not safe for concurrent mutation.
//
// # Related Packages
//
//   - github.com/AMBE1203/xmpcore/ir - IR representation
package registry
