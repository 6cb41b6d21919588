package xmpcore

import (
	"github.com/AMBE1203/xmpcore/ir"
)

// SetQualifier sets qualifier name on the property at path, updating the
// value if the qualifier is already present. Reserved qualifier placement
// (xml:lang first, rdf:type next) is handled by the core.
func (m *Meta) SetQualifier(schemaURI, path, name, value string) error {
	node, err := m.resolve(schemaURI, path)
	if err != nil {
		return err
	}
	if q := node.FindQualifierByName(name); q != nil {
		q.Value = value
		return nil
	}
	return node.AddQualifier(ir.New(name, value, 0))
}

// GetQualifier returns the value of qualifier name on the property at path.
func (m *Meta) GetQualifier(schemaURI, path, name string) (string, error) {
	node, err := m.resolve(schemaURI, path)
	if err != nil {
		return "", err
	}
	q := node.FindQualifierByName(name)
	if q == nil {
		return "", notFound(schemaURI, path+"/?"+name)
	}
	return q.Value, nil
}

// DeleteQualifier removes qualifier name from the property at path.
// Missing qualifiers are a no-op.
func (m *Meta) DeleteQualifier(schemaURI, path, name string) error {
	node, err := m.resolve(schemaURI, path)
	if err != nil {
		return err
	}
	if q := node.FindQualifierByName(name); q != nil {
		node.RemoveQualifier(q)
	}
	return nil
}
