// Package eval filters metadata trees with expr programs.
//
// A filter program runs once per property node during a tree walk. The
// environment exposes the node's path, name, value and schema URI, plus a
// few predicate helpers:
//
//	name == "dc:creator"
//	schema == "http://purl.org/dc/elements/1.1/" && value != ""
//	lang() == "en-US"
//	isArray() && hasQualifier("xml:lang")
//
// # Usage
//
//	nodes, err := eval.Filter(root, `name startsWith "dc:"`)
//
// # Related Packages
//
//   - github.com/AMBE1203/xmpcore/ir - IR representation
package eval
