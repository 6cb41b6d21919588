package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/AMBE1203/xmpcore/ir"
)

type EncState struct {
	depth     int
	indent    int
	canonical bool

	Color func(ColorAttr, string) string
}

// Encode writes the subtree rooted at node to w. A nameless node is treated
// as a tree root and its schema children are emitted at depth 0; any other
// node is emitted directly.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.canonical {
		node = node.Clone()
		if err := node.Sort(); err != nil {
			return err
		}
	}
	if node.Name == "" && !node.Opts.IsSchema() {
		for c := range node.Children() {
			if err := encodeNode(c, w, es, false); err != nil {
				return err
			}
		}
		return nil
	}
	return encodeNode(node, w, es, node.Opts.IsQualifier())
}

func encodeNode(n *ir.Node, w io.Writer, es *EncState, asQual bool) error {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
	if asQual {
		sb.WriteString(es.color(SepColor, "? "))
	}
	if n.Opts.IsSchema() {
		sb.WriteString(es.color(SchemaColor, "@"+n.Name))
		sb.WriteString(es.color(SepColor, " = "))
		sb.WriteString(es.color(ValueColor, strconv.Quote(n.Value)))
	} else {
		nameAttr := NameColor
		if asQual {
			nameAttr = QualColor
		}
		sb.WriteString(es.color(nameAttr, n.Name))
		if flags := structureFlags(n.Opts); flags != "" {
			sb.WriteString(" ")
			sb.WriteString(es.color(FlagColor, "("+flags+")"))
		}
		if !n.Opts.IsComposite() {
			sb.WriteString(es.color(SepColor, " = "))
			sb.WriteString(es.color(ValueColor, strconv.Quote(n.Value)))
		}
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	es.depth++
	defer func() { es.depth-- }()
	for q := range n.Qualifiers() {
		if err := encodeNode(q, w, es, true); err != nil {
			return err
		}
	}
	for c := range n.Children() {
		if err := encodeNode(c, w, es, false); err != nil {
			return err
		}
	}
	return nil
}

// structureFlags renders the parenthesized flag list for a declaration.
// Derived qualifier bookkeeping bits are never emitted.
func structureFlags(o ir.Options) string {
	var flags []string
	switch {
	case o.IsAltText():
		flags = append(flags, "alt-text")
	case o.IsAlternate():
		flags = append(flags, "alternative")
	case o.IsOrdered():
		flags = append(flags, "ordered")
	case o.IsArray():
		flags = append(flags, "unordered")
	case o.IsStruct():
		flags = append(flags, "struct")
	}
	if o.IsURI() {
		flags = append(flags, "uri")
	}
	return strings.Join(flags, ",")
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}
