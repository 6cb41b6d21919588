package xmpcore

import (
	"errors"
	"fmt"

	"github.com/AMBE1203/xmpcore/ir"
)

// AppendArrayItem appends a value to the array at path, creating the array
// with arrayOpts when it does not exist yet.
func (m *Meta) AppendArrayItem(schemaURI, path, value string, arrayOpts ir.Options) error {
	if arrayOpts == 0 {
		arrayOpts = ir.OptArray
	}
	if !arrayOpts.IsArray() {
		return fmt.Errorf("options %s do not describe an array", arrayOpts)
	}
	arr, unwind, err := m.resolveOrCreate(schemaURI, path, arrayOpts)
	if err != nil {
		return err
	}
	if !arr.Opts.IsArray() {
		unwind()
		return fmt.Errorf("%q is not an array", path)
	}
	arr.Implicit = false
	item := ir.New(ir.ArrayItemName, value, 0)
	if err := arr.AddChild(item); err != nil {
		unwind()
		return err
	}
	return nil
}

// ArrayItemCount returns the number of items in the array at path. A
// missing array has zero items.
func (m *Meta) ArrayItemCount(schemaURI, path string) (int, error) {
	arr, err := m.resolve(schemaURI, path)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if !arr.Opts.IsArray() {
		return 0, fmt.Errorf("%q is not an array", path)
	}
	return arr.ChildCount(), nil
}
