package xmpcore

import (
	"fmt"
	"strings"

	"github.com/AMBE1203/xmpcore/ir"
)

// XDefault is the language tag of the default item in an alt-text array.
const XDefault = "x-default"

// GetLocalizedText picks an item from the alt-text array at path. Selection
// tries an exact specificLang match, then any item under genericLang, then
// the x-default item, then the first item. The chosen item's language and
// value are returned.
func (m *Meta) GetLocalizedText(schemaURI, path, genericLang, specificLang string) (string, string, error) {
	arr, err := m.resolve(schemaURI, path)
	if err != nil {
		return "", "", err
	}
	if !arr.Opts.IsAltText() {
		return "", "", fmt.Errorf("%q is not an alt-text array", path)
	}
	if !arr.HasChildren() {
		return "", "", notFound(schemaURI, path)
	}
	if item := findLangItem(arr, specificLang); item != nil {
		return specificLang, item.Value, nil
	}
	if genericLang != "" {
		for item := range arr.Children() {
			lang := itemLang(item)
			if lang == genericLang || strings.HasPrefix(lang, genericLang+"-") {
				return lang, item.Value, nil
			}
		}
	}
	if item := findLangItem(arr, XDefault); item != nil {
		return XDefault, item.Value, nil
	}
	item, err := arr.GetChild(1)
	if err != nil {
		return "", "", err
	}
	return itemLang(item), item.Value, nil
}

// SetLocalizedText sets the item for specificLang in the alt-text array at
// path, creating the array if needed. The first value stored in a fresh
// array is mirrored into an x-default item, which stays at position 1.
func (m *Meta) SetLocalizedText(schemaURI, path, genericLang, specificLang, value string) error {
	arrayOpts := ir.OptArray | ir.OptArrayOrdered | ir.OptArrayAlternate | ir.OptArrayAltText
	arr, unwind, err := m.resolveOrCreate(schemaURI, path, arrayOpts)
	if err != nil {
		return err
	}
	if !arr.Opts.IsAltText() {
		unwind()
		return fmt.Errorf("%q is not an alt-text array", path)
	}
	arr.Implicit = false

	if item := findLangItem(arr, specificLang); item != nil {
		item.Value = value
		return nil
	}
	fresh := !arr.HasChildren()
	item := ir.New(ir.ArrayItemName, value, 0)
	if err := item.AddQualifier(ir.New(ir.LangName, specificLang, 0)); err != nil {
		unwind()
		return err
	}
	if err := arr.AddChild(item); err != nil {
		unwind()
		return err
	}
	if fresh && specificLang != XDefault {
		def := ir.New(ir.ArrayItemName, value, 0)
		if err := def.AddQualifier(ir.New(ir.LangName, XDefault, 0)); err != nil {
			unwind()
			return err
		}
		if err := arr.InsertChild(1, def); err != nil {
			unwind()
			return err
		}
	}
	return nil
}

func findLangItem(arr *ir.Node, lang string) *ir.Node {
	for item := range arr.Children() {
		if itemLang(item) == lang {
			return item
		}
	}
	return nil
}

func itemLang(item *ir.Node) string {
	if q := item.FindQualifierByName(ir.LangName); q != nil {
		return q.Value
	}
	return ""
}
