package parse

import "github.com/AMBE1203/xmpcore/ir"

type parseOpts struct {
	positions map[*ir.Node]Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the source line of every parsed node into m.
// Consumers use it to point error messages back at the input.
func ParsePositions(m map[*ir.Node]Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
