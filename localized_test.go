package xmpcore

import (
	"errors"
	"testing"

	"github.com/AMBE1203/xmpcore/ir"
)

func TestSetLocalizedTextFreshArray(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetLocalizedText(testNS, "ns1:Title", "en", "en-US", "Hello"); err != nil {
		t.Fatal(err)
	}
	arr, err := m.resolve(testNS, "ns1:Title")
	if err != nil {
		t.Fatal(err)
	}
	if !arr.Opts.IsAltText() {
		t.Fatalf("array opts = %s", arr.Opts)
	}
	// first write mirrors into x-default at position 1
	if arr.ChildCount() != 2 {
		t.Fatalf("item count = %d, want 2", arr.ChildCount())
	}
	first, _ := arr.GetChild(1)
	if itemLang(first) != XDefault || first.Value != "Hello" {
		t.Errorf("first item = %q %q", itemLang(first), first.Value)
	}
}

func TestSetLocalizedTextUpdate(t *testing.T) {
	m := newTestMeta(t)
	if err := m.SetLocalizedText(testNS, "ns1:Title", "en", "en-US", "Hello"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetLocalizedText(testNS, "ns1:Title", "de", "de-DE", "Hallo"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetLocalizedText(testNS, "ns1:Title", "en", "en-US", "Hi"); err != nil {
		t.Fatal(err)
	}
	arr, _ := m.resolve(testNS, "ns1:Title")
	if arr.ChildCount() != 3 {
		t.Fatalf("item count = %d, want 3", arr.ChildCount())
	}
	lang, v, err := m.GetLocalizedText(testNS, "ns1:Title", "en", "en-US")
	if err != nil || lang != "en-US" || v != "Hi" {
		t.Errorf("got %q %q, %v", lang, v, err)
	}
}

func TestGetLocalizedTextSelection(t *testing.T) {
	m := newTestMeta(t)
	for _, it := range []struct{ lang, v string }{
		{"en-US", "color"},
		{"en-GB", "colour"},
		{"de-DE", "Farbe"},
	} {
		if err := m.SetLocalizedText(testNS, "ns1:Word", "", it.lang, it.v); err != nil {
			t.Fatal(err)
		}
	}
	tests := []struct {
		name     string
		generic  string
		specific string
		wantLang string
		wantV    string
	}{
		{"exact", "en", "en-GB", "en-GB", "colour"},
		{"generic fallback", "de", "de-AT", "de-DE", "Farbe"},
		{"default fallback", "fr", "fr-FR", XDefault, "color"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lang, v, err := m.GetLocalizedText(testNS, "ns1:Word", tc.generic, tc.specific)
			if err != nil {
				t.Fatal(err)
			}
			if lang != tc.wantLang || v != tc.wantV {
				t.Errorf("got %q %q, want %q %q", lang, v, tc.wantLang, tc.wantV)
			}
		})
	}
}

func TestGetLocalizedTextFirstItemFallback(t *testing.T) {
	m := newTestMeta(t)
	// build an alt-text array without an x-default item
	if err := m.SetProperty(testNS, "ns1:W", "",
		ir.OptArray|ir.OptArrayOrdered|ir.OptArrayAlternate|ir.OptArrayAltText); err != nil {
		t.Fatal(err)
	}
	if err := m.SetLocalizedText(testNS, "ns1:W", "", "ja-JP", "こん"); err != nil {
		t.Fatal(err)
	}
	arr, _ := m.resolve(testNS, "ns1:W")
	if arr.ChildCount() != 2 {
		t.Fatalf("count = %d", arr.ChildCount())
	}
	// remove the x-default item, leaving ja-JP only
	if err := m.DeleteProperty(testNS, `ns1:W[?xml:lang="x-default"]`); err != nil {
		t.Fatal(err)
	}
	lang, v, err := m.GetLocalizedText(testNS, "ns1:W", "fr", "fr-FR")
	if err != nil || lang != "ja-JP" || v != "こん" {
		t.Errorf("got %q %q, %v", lang, v, err)
	}
}

func TestLocalizedTextErrors(t *testing.T) {
	m := newTestMeta(t)
	if _, _, err := m.GetLocalizedText(testNS, "ns1:Missing", "en", "en-US"); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("err = %v, want ErrPropertyNotFound", err)
	}
	if err := m.SetProperty(testNS, "ns1:Plain", "v", 0); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.GetLocalizedText(testNS, "ns1:Plain", "en", "en-US"); err == nil {
		t.Error("expected non-alt-text error")
	}
	if err := m.SetLocalizedText(testNS, "ns1:Plain", "en", "en-US", "v"); err == nil {
		t.Error("expected non-alt-text error")
	}
}
