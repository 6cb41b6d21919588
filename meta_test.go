package xmpcore

import (
	"errors"
	"testing"

	"github.com/AMBE1203/xmpcore/ir"
	"github.com/AMBE1203/xmpcore/parse"
)

const testNS = "http://ns.example.com/1/"

func newTestMeta(t *testing.T) *Meta {
	t.Helper()
	m := NewMeta()
	if _, err := m.Registry().RegisterNamespace(testNS, "ns1"); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSetGetProperty(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Title", "Hello", 0); err != nil {
		t.Fatal(err)
	}
	v, opts, err := m.GetProperty(testNS, "ns1:Title")
	if err != nil {
		t.Fatal(err)
	}
	if v != "Hello" || opts != 0 {
		t.Errorf("got %q %s", v, opts)
	}
	if !m.PropertyExists(testNS, "ns1:Title") {
		t.Error("PropertyExists = false")
	}
	if m.PropertyExists(testNS, "ns1:Other") {
		t.Error("PropertyExists(ns1:Other) = true")
	}
	// the schema node was created from the registry
	schema, err := m.root.GetChild(1)
	if err != nil {
		t.Fatal(err)
	}
	if schema.Name != "ns1" || schema.Value != testNS || !schema.Opts.IsSchema() {
		t.Errorf("schema = %q %q %s", schema.Name, schema.Value, schema.Opts)
	}
}

func TestSetPropertyUnregisteredNamespace(t *testing.T) {
	m := NewMeta()
	err := m.SetProperty("http://unknown/", "x:Y", "v", 0)
	if err == nil {
		t.Fatal("expected error for unregistered namespace")
	}
	if m.root.HasChildren() {
		t.Error("failed set left structure behind")
	}
}

func TestSetPropertyNestedCreatesImplicit(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Author/ns1:Name", "Ann", 0); err != nil {
		t.Fatal(err)
	}
	author, err := m.resolve(testNS, "ns1:Author")
	if err != nil {
		t.Fatal(err)
	}
	if !author.Opts.IsStruct() || !author.Implicit {
		t.Errorf("interior node = %s implicit=%v", author.Opts, author.Implicit)
	}
	name, err := m.resolve(testNS, "ns1:Author/ns1:Name")
	if err != nil {
		t.Fatal(err)
	}
	if name.Implicit || name.Value != "Ann" {
		t.Errorf("leaf implicit=%v value=%q", name.Implicit, name.Value)
	}
}

func TestSetPropertyArrayAppend(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Keywords[1]", "go", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetProperty(testNS, "ns1:Keywords[2]", "metadata", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetProperty(testNS, "ns1:Keywords[last()]", "updated", 0); err != nil {
		t.Fatal(err)
	}
	v, _, err := m.GetProperty(testNS, "ns1:Keywords[2]")
	if err != nil {
		t.Fatal(err)
	}
	if v != "updated" {
		t.Errorf("item 2 = %q", v)
	}
	n, err := m.ArrayItemCount(testNS, "ns1:Keywords")
	if err != nil || n != 2 {
		t.Errorf("count = %d, %v", n, err)
	}
}

func TestSetPropertyUnwindsOnFailure(t *testing.T) {
	m := newTestMeta(t)
	// index 3 of a fresh empty array is out of range; the implicitly
	// created schema and array must be unwound
	err := m.SetProperty(testNS, "ns1:Keywords[3]", "v", 0)
	if !errors.Is(err, ir.ErrPositionOutOfRange) {
		t.Fatalf("err = %v, want position error", err)
	}
	if m.root.HasChildren() {
		t.Errorf("failed set left structure behind:\n%s", m)
	}
}

func TestSetPropertyUnwindKeepsExisting(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Title", "Hello", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetProperty(testNS, "ns1:Struct/ns1:Arr[5]", "v", 0); err == nil {
		t.Fatal("expected error")
	}
	if m.PropertyExists(testNS, "ns1:Struct") {
		t.Error("implicit struct not unwound")
	}
	if !m.PropertyExists(testNS, "ns1:Title") {
		t.Error("existing property lost")
	}
}

func TestSetPropertyCompositeValue(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:S", "", ir.OptStruct); err != nil {
		t.Fatal(err)
	}
	err := m.SetProperty(testNS, "ns1:S", "v", ir.OptStruct)
	if !errors.Is(err, ErrCompositeValue) {
		t.Errorf("err = %v, want ErrCompositeValue", err)
	}
}

func TestSetPropertyThroughLeaf(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Title", "Hello", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetProperty(testNS, "ns1:Title/ns1:X", "v", 0); err == nil {
		t.Fatal("expected error setting field under a valued leaf")
	}
	if v, _, _ := m.GetProperty(testNS, "ns1:Title"); v != "Hello" {
		t.Errorf("leaf damaged: %q", v)
	}
}

func TestDeleteProperty(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Title", "Hello", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetProperty(testNS, "ns1:Desc", "d", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.DeleteProperty(testNS, "ns1:Title"); err != nil {
		t.Fatal(err)
	}
	if m.PropertyExists(testNS, "ns1:Title") {
		t.Error("property still present")
	}
	// schema stays while it has other properties
	if m.findSchema(testNS) == nil {
		t.Fatal("schema pruned too early")
	}
	if err := m.DeleteProperty(testNS, "ns1:Desc"); err != nil {
		t.Fatal(err)
	}
	if m.findSchema(testNS) != nil {
		t.Error("empty schema not pruned")
	}
	// deleting a missing property is a no-op
	if err := m.DeleteProperty(testNS, "ns1:Gone"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestQualifiers(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, "ns1:Title", "Hello", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetQualifier(testNS, "ns1:Title", "ns1:note", "draft"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetQualifier(testNS, "ns1:Title", ir.LangName, "en"); err != nil {
		t.Fatal(err)
	}
	v, err := m.GetQualifier(testNS, "ns1:Title", "ns1:note")
	if err != nil || v != "draft" {
		t.Errorf("GetQualifier = %q, %v", v, err)
	}
	// qualifier path syntax resolves too
	v2, _, err := m.GetProperty(testNS, "ns1:Title/?xml:lang")
	if err != nil || v2 != "en" {
		t.Errorf("qualifier path = %q, %v", v2, err)
	}
	// xml:lang was placed first
	title, _ := m.resolve(testNS, "ns1:Title")
	q, _ := title.GetQualifier(1)
	if q.Name != ir.LangName {
		t.Errorf("first qualifier = %q", q.Name)
	}
	// updating an existing qualifier
	if err := m.SetQualifier(testNS, "ns1:Title", ir.LangName, "de"); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.GetQualifier(testNS, "ns1:Title", ir.LangName); v != "de" {
		t.Errorf("updated qualifier = %q", v)
	}
	if err := m.DeleteQualifier(testNS, "ns1:Title", "ns1:note"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.GetQualifier(testNS, "ns1:Title", "ns1:note"); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("err = %v, want ErrPropertyNotFound", err)
	}
}

func TestTypedAccessors(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetPropertyBool(testNS, "ns1:Flag", true); err != nil {
		t.Fatal(err)
	}
	v, _, err := m.GetProperty(testNS, "ns1:Flag")
	if err != nil || v != "True" {
		t.Errorf("bool wire form = %q, %v", v, err)
	}
	b, err := m.GetPropertyBool(testNS, "ns1:Flag")
	if err != nil || !b {
		t.Errorf("GetPropertyBool = %v, %v", b, err)
	}
	if err := m.SetPropertyInt(testNS, "ns1:Count", -42); err != nil {
		t.Fatal(err)
	}
	i, err := m.GetPropertyInt(testNS, "ns1:Count")
	if err != nil || i != -42 {
		t.Errorf("GetPropertyInt = %d, %v", i, err)
	}
	if _, err := m.GetPropertyInt(testNS, "ns1:Flag"); err == nil {
		t.Error("expected parse error reading bool as int")
	}
}

func TestAppendArrayItem(t *testing.T) {
	m := newTestMeta(t)
	if err := m.AppendArrayItem(testNS, "ns1:Authors", "Ann", ir.OptArray|ir.OptArrayOrdered); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendArrayItem(testNS, "ns1:Authors", "Ben", 0); err != nil {
		t.Fatal(err)
	}
	n, err := m.ArrayItemCount(testNS, "ns1:Authors")
	if err != nil || n != 2 {
		t.Fatalf("count = %d, %v", n, err)
	}
	arr, _ := m.resolve(testNS, "ns1:Authors")
	if !arr.Opts.IsOrdered() {
		t.Errorf("array opts = %s", arr.Opts)
	}
	// appending to a non-array fails
	if err := m.SetProperty(testNS, "ns1:Title", "t", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendArrayItem(testNS, "ns1:Title", "x", 0); err == nil {
		t.Error("expected non-array error")
	}
	// count of a missing array is zero
	if n, err := m.ArrayItemCount(testNS, "ns1:Missing"); err != nil || n != 0 {
		t.Errorf("missing array count = %d, %v", n, err)
	}
}

func TestSelectorPath(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetProperty(testNS, `ns1:Colors[?ns1:kind="warm"]`, "red", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetProperty(testNS, `ns1:Colors[?ns1:kind="cold"]`, "blue", 0); err != nil {
		t.Fatal(err)
	}
	v, _, err := m.GetProperty(testNS, `ns1:Colors[?ns1:kind="cold"]`)
	if err != nil || v != "blue" {
		t.Errorf("selector get = %q, %v", v, err)
	}
	// selecting again updates in place
	if err := m.SetProperty(testNS, `ns1:Colors[?ns1:kind="warm"]`, "orange", 0); err != nil {
		t.Fatal(err)
	}
	if n, _ := m.ArrayItemCount(testNS, "ns1:Colors"); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestMetaCloneAndSort(t *testing.T) {
	m := newTestMeta(t)
	for _, p := range []string{"ns1:B", "ns1:A"} {
		if err := m.SetProperty(testNS, p, "v", 0); err != nil {
			t.Fatal(err)
		}
	}
	clone := m.Clone()
	if err := clone.Sort(); err != nil {
		t.Fatal(err)
	}
	schema := clone.findSchema(testNS)
	first, _ := schema.GetChild(1)
	if first.Name != "ns1:A" {
		t.Errorf("sorted first = %q", first.Name)
	}
	// original untouched
	orig := m.findSchema(testNS)
	origFirst, _ := orig.GetChild(1)
	if origFirst.Name != "ns1:B" {
		t.Errorf("clone shares state with original")
	}
}

func TestFromNodeRoundTrip(t *testing.T) {
	doc := "@ns1 = \"http://ns.example.com/1/\"\nns1:Title = \"Hello\"\n"
	root, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	m := FromNode(root)
	v, _, err := m.GetProperty(testNS, "ns1:Title")
	if err != nil || v != "Hello" {
		t.Errorf("GetProperty = %q, %v", v, err)
	}
}
