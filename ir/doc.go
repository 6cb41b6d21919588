// Package ir provides the intermediate representation (IR) for metadata trees.
//
// # Overview
//
// The IR package defines the core data structure for representing structured
// metadata as a tree of nodes. All metadata (whether parsed from text, created
// programmatically, or imported from JSON) is represented as an ir.Node tree.
//
// A tree is rooted at a nameless node whose children are schema nodes, one per
// namespace. Schema nodes carry their namespace URI in the Value field and own
// the top-level properties of that namespace. Properties may be simple values,
// structs, or arrays, and any node may carry qualifiers.
//
// # Node Structure
//
// A Node represents a single vertex in a metadata tree. Every schema,
// property, struct field, array item, and qualifier is a Node; the role is
// encoded in the Opts bitfield rather than in a type hierarchy. Nodes can be:
//
//   - Schema nodes: Value holds the namespace URI, Opts has OptSchemaNode
//   - Property nodes: Name holds the prefixed property name, Value the payload
//   - Struct fields: named children of a node with OptStruct
//   - Array items: children of a node with OptArray, named ArrayItemName
//   - Qualifiers: annotation nodes attached to any node, Opts has OptQualifier
//
// Each node maintains a non-owning Parent reference for navigation. Children
// and qualifiers are owned, ordered sequences addressed by 1-based position.
//
// # Invariants
//
// The mutation operations enforce, after every successful call:
//
//   - Sibling name uniqueness among children and among qualifiers, except for
//     the ArrayItemName marker, which may repeat.
//   - The xml:lang qualifier, when present, is at position 1; rdf:type follows
//     it (or is first when no xml:lang exists); other qualifiers keep
//     insertion order until Sort is run.
//   - OptHasQualifiers, OptHasLanguage and OptHasType never diverge from the
//     actual qualifier sequence.
//   - A child or qualifier sequence that becomes empty reverts to its absent
//     state rather than staying allocated.
//
// Operations either complete fully or leave the node unchanged.
//
// # Creating Nodes
//
//	schema := ir.New("ns1", "http://ns.example.com/1/", ir.OptSchemaNode)
//	title := ir.New("ns1:Title", "Hello", 0)
//	if err := schema.AddChild(title); err != nil { ... }
//	lang := ir.New(ir.LangName, "en", 0)
//	if err := title.AddQualifier(lang); err != nil { ... }
//
// # Canonicalization
//
// Sort reorders qualifiers and non-array children into a deterministic,
// name-based order so that two structurally equal trees encode identically:
//
//	if err := root.Sort(); err != nil { ... }
//
// Schema nodes sort by Value (the namespace URI), all other nodes by Name,
// using byte-wise ordinal comparison. Array children are never reordered and
// the reserved xml:lang / rdf:type qualifier prefix is left in place. Sort is
// idempotent.
//
// # Path Operations
//
// Use GetPath to navigate to a node with a property path:
//
//	node, err := schema.GetPath("ns1:Author/ns1:Name")
//	item, err := schema.GetPath("ns1:Keywords[2]")
//	qual, err := schema.GetPath("ns1:Title/?xml:lang")
//
// See the ppath subpackage for the path syntax.
//
// # JSON Interoperability
//
// Nodes marshal to and from a JSON form that carries names, values, option
// flags, children and qualifiers. Parent references and derived flags are
// rebuilt on unmarshal, so the JSON form is self-contained.
//
// # Thread Safety
//
// Node trees are not thread-safe. A tree has one exclusive owner while it is
// being mutated; after that it may be shared among concurrent readers as an
// immutable snapshot.
//
// # Related Packages
//
//   - github.com/AMBE1203/xmpcore/parse - Parses text into IR nodes
//   - github.com/AMBE1203/xmpcore/encode - Encodes IR nodes to text
//   - github.com/AMBE1203/xmpcore/registry - Namespace and alias registry
//   - github.com/AMBE1203/xmpcore/eval - Property filtering over IR nodes
package ir
