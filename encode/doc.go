// Package encode renders IR node trees as metadata listing text.
//
// The output is the same line format the parse package reads. With
// EncodeCanonical the tree is canonicalized first, making the output
// deterministic for structurally equal trees.
//
// # Usage
//
//	err := encode.Encode(root, os.Stdout, encode.EncodeCanonical(true))
//
// # Related Packages
//
//   - github.com/AMBE1203/xmpcore/ir - IR representation
//   - github.com/AMBE1203/xmpcore/parse - Parse text to IR
package encode
