// Package parse parses metadata listing text into IR node trees.
//
// The listing format is line oriented. Indentation (2 spaces per level)
// carries the tree structure:
//
//	# a comment
//	@ns1 = "http://ns.example.com/1/"
//	ns1:Title = "Hello"
//	  ? xml:lang = "en"
//	ns1:Keywords (unordered)
//	  [] = "go"
//	  [] = "metadata"
//	ns1:Author (struct)
//	  ns1:Name = "Ann"
//
// Schema declarations (`@prefix = "uri"`) appear at depth 0; their
// properties are nested beneath. Composite properties carry their structure
// flags in parentheses, array items use the reserved "[]" name, and
// qualifier lines are prefixed with "? ". Values use Go string literal
// syntax.
//
// The parser assembles the tree exclusively through the ir mutation
// operations, so malformed input such as duplicate property or qualifier
// names surfaces as a parse error wrapping ir.ErrDuplicateName.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
// # Related Packages
//
//   - github.com/AMBE1203/xmpcore/ir - IR representation
//   - github.com/AMBE1203/xmpcore/encode - Encode IR to text
package parse
