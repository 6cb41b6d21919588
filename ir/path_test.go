package ir

import (
	"errors"
	"testing"
)

func buildTestSchema(t *testing.T) *Node {
	t.Helper()
	schema := New("ns1", "http://example.com/1/", OptSchemaNode)
	title := mustAddChild(t, schema, New("ns1:Title", "Hello", 0))
	mustAddQual(t, title, New(LangName, "en", 0))
	author := mustAddChild(t, schema, New("ns1:Author", "", OptStruct))
	mustAddChild(t, author, New("ns1:Name", "Ann", 0))
	alt := mustAddChild(t, schema, New("ns1:Desc", "", OptArray|OptArrayOrdered|OptArrayAlternate|OptArrayAltText))
	en := mustAddChild(t, alt, New(ArrayItemName, "hi", 0))
	mustAddQual(t, en, New(LangName, "en", 0))
	de := mustAddChild(t, alt, New(ArrayItemName, "hallo", 0))
	mustAddQual(t, de, New(LangName, "de", 0))
	return schema
}

func TestGetPath(t *testing.T) {
	schema := buildTestSchema(t)
	tests := []struct {
		path  string
		value string
	}{
		{"ns1:Title", "Hello"},
		{"ns1:Title/?xml:lang", "en"},
		{"ns1:Author/ns1:Name", "Ann"},
		{"ns1:Desc[1]", "hi"},
		{"ns1:Desc[2]", "hallo"},
		{"ns1:Desc[last()]", "hallo"},
		{`ns1:Desc[?xml:lang="de"]`, "hallo"},
		{`ns1:Desc[?xml:lang="en"]/?xml:lang`, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			n, err := schema.GetPath(tt.path)
			if err != nil {
				t.Fatalf("GetPath: %v", err)
			}
			if n == nil {
				t.Fatal("GetPath returned nil")
			}
			if n.Value != tt.value {
				t.Errorf("value = %q, want %q", n.Value, tt.value)
			}
		})
	}
}

func TestGetPathMissing(t *testing.T) {
	schema := buildTestSchema(t)
	for _, path := range []string{
		"ns1:Nope",
		"ns1:Author/ns1:Nope",
		"ns1:Title/?ns1:missing",
		`ns1:Desc[?xml:lang="fr"]`,
	} {
		n, err := schema.GetPath(path)
		if err != nil {
			t.Errorf("GetPath(%q): unexpected error %v", path, err)
		}
		if n != nil {
			t.Errorf("GetPath(%q) = %v, want nil", path, n)
		}
	}
}

func TestGetPathKindMismatch(t *testing.T) {
	schema := buildTestSchema(t)
	if _, err := schema.GetPath("ns1:Title[1]"); err == nil {
		t.Error("index step on simple property should error")
	}
	if _, err := schema.GetPath("ns1:Desc[3]"); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("out of range index: err = %v", err)
	}
}

func TestNodePath(t *testing.T) {
	root := &Node{}
	schema := buildTestSchema(t)
	if err := root.AddChild(schema); err != nil {
		t.Fatal(err)
	}
	name, err := schema.GetPath("ns1:Author/ns1:Name")
	if err != nil || name == nil {
		t.Fatalf("GetPath: %v %v", name, err)
	}
	if got := name.Path(); got != "http://example.com/1/ns1:Author/ns1:Name" {
		t.Errorf("name path = %q", got)
	}
	item, err := schema.GetPath("ns1:Desc[2]")
	if err != nil || item == nil {
		t.Fatalf("GetPath: %v %v", item, err)
	}
	if got := item.Path(); got != "http://example.com/1/ns1:Desc[2]" {
		t.Errorf("item path = %q", got)
	}
	lang := item.FindQualifierByName(LangName)
	if got := lang.Path(); got != "http://example.com/1/ns1:Desc[2]/?xml:lang" {
		t.Errorf("qualifier path = %q", got)
	}
}
