package ir

import (
	"errors"
	"testing"
)

func TestAddChildDuplicateName(t *testing.T) {
	p := New("ns1:Author", "", OptStruct)
	if err := p.AddChild(New("ns1:Name", "Ann", 0)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := p.AddChild(New("ns1:Name", "Bob", 0))
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("err = %v, want ErrDuplicateName", err)
	}
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("err %v is not a *DuplicateNameError", err)
	}
	if dup.Name != "ns1:Name" || dup.Qualifier {
		t.Errorf("got %+v, want child collision on ns1:Name", dup)
	}
	if p.ChildCount() != 1 {
		t.Errorf("failed add mutated the node: count %d", p.ChildCount())
	}
}

func TestAddChildArrayItemsRepeat(t *testing.T) {
	arr := New("ns1:Keywords", "", OptArray)
	for i := 0; i < 3; i++ {
		if err := arr.AddChild(New(ArrayItemName, "v", 0)); err != nil {
			t.Fatalf("add item %d: %v", i, err)
		}
	}
	if arr.ChildCount() != 3 {
		t.Errorf("count = %d, want 3", arr.ChildCount())
	}
}

func TestInsertChild(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	if err := p.AddChild(New("a", "", 0)); err != nil {
		t.Fatal(err)
	}
	if err := p.AddChild(New("c", "", 0)); err != nil {
		t.Fatal(err)
	}
	if err := p.InsertChild(2, New("b", "", 0)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var names []string
	for c := range p.Children() {
		names = append(names, c.Name)
	}
	want := []string{"a", "b", "c"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
	// append position
	if err := p.InsertChild(4, New("d", "", 0)); err != nil {
		t.Errorf("insert at count+1: %v", err)
	}
	if err := p.InsertChild(0, New("x", "", 0)); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("insert at 0: err = %v, want ErrPositionOutOfRange", err)
	}
	if err := p.InsertChild(6, New("x", "", 0)); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("insert past end: err = %v, want ErrPositionOutOfRange", err)
	}
}

func TestGetChildPositionRange(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	if err := p.AddChild(New("a", "", 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.GetChild(0); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("GetChild(0): err = %v, want ErrPositionOutOfRange", err)
	}
	if _, err := p.GetChild(2); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("GetChild(count+1): err = %v, want ErrPositionOutOfRange", err)
	}
	c, err := p.GetChild(1)
	if err != nil || c.Name != "a" {
		t.Errorf("GetChild(1) = %v, %v", c, err)
	}
}

func TestReplaceChild(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	if err := p.AddChild(New("a", "1", 0)); err != nil {
		t.Fatal(err)
	}
	repl := New("b", "2", 0)
	if err := p.ReplaceChild(1, repl); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, _ := p.GetChild(1); got != repl || got.Parent != p {
		t.Errorf("child 1 = %v (parent %v)", got, got.Parent)
	}
	if err := p.ReplaceChild(2, New("c", "", 0)); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("replace out of range: err = %v", err)
	}
}

func TestRemoveChildRevertsToAbsent(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	c := New("a", "", 0)
	if err := p.AddChild(c); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveChild(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if p.HasChildren() {
		t.Error("HasChildren after removing only child")
	}
	if p.children != nil {
		t.Error("child sequence not reverted to absent state")
	}
}

func TestRemoveChildNode(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	a, b := New("a", "", 0), New("b", "", 0)
	if err := p.AddChild(a); err != nil {
		t.Fatal(err)
	}
	if err := p.AddChild(b); err != nil {
		t.Fatal(err)
	}
	p.RemoveChildNode(a)
	if p.ChildCount() != 1 || p.FindChildByName("a") != nil {
		t.Errorf("a not removed")
	}
	// unknown node is a no-op
	p.RemoveChildNode(New("zzz", "", 0))
	if p.ChildCount() != 1 {
		t.Errorf("count changed by removing unknown node")
	}
}

func TestRemoveChildren(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	for _, name := range []string{"a", "b", "c"} {
		if err := p.AddChild(New(name, "", 0)); err != nil {
			t.Fatal(err)
		}
	}
	p.RemoveChildren()
	if p.HasChildren() || p.ChildCount() != 0 {
		t.Errorf("HasChildren=%v count=%d after RemoveChildren", p.HasChildren(), p.ChildCount())
	}
	if p.children != nil {
		t.Error("child sequence not reverted to absent state")
	}
}

func TestOwnershipTransfer(t *testing.T) {
	p1 := New("p1", "", OptStruct)
	p2 := New("p2", "", OptStruct)
	c := New("a", "", 0)
	if err := p1.AddChild(c); err != nil {
		t.Fatal(err)
	}
	p1.RemoveChildNode(c)
	if err := p2.AddChild(c); err != nil {
		t.Fatal(err)
	}
	if c.Parent != p2 {
		t.Errorf("parent = %v, want p2", c.Parent)
	}
}

func TestClear(t *testing.T) {
	n := New("ns1:Title", "Hello", OptStruct)
	if err := n.AddChild(New("a", "", 0)); err != nil {
		t.Fatal(err)
	}
	if err := n.AddQualifier(New(LangName, "en", 0)); err != nil {
		t.Fatal(err)
	}
	n.Implicit = true
	n.Clear()
	if n.Name != "" || n.Value != "" || n.Opts != 0 {
		t.Errorf("fields not cleared: %+v", n)
	}
	if n.HasChildren() || n.HasQualifier() || n.Implicit {
		t.Errorf("sequences or markers not cleared")
	}
}

func TestClone(t *testing.T) {
	n := New("ns1:Author", "", OptStruct)
	name := New("ns1:Name", "Ann", 0)
	if err := n.AddChild(name); err != nil {
		t.Fatal(err)
	}
	if err := name.AddQualifier(New(LangName, "en", 0)); err != nil {
		t.Fatal(err)
	}
	c := n.Clone()
	if c.Parent != nil {
		t.Error("clone should be detached")
	}
	if !Equal(n, c) {
		t.Error("clone not structurally equal")
	}
	cn, _ := c.GetChild(1)
	if cn == name {
		t.Error("clone shares child node with original")
	}
	if cn.Parent != c {
		t.Error("clone child parent not rebound")
	}
	cn.Value = "Bob"
	if name.Value != "Ann" {
		t.Error("mutating clone affected original")
	}
}

func TestChildrenIteratorRestartable(t *testing.T) {
	p := New("ns1:S", "", OptStruct)
	for _, name := range []string{"a", "b", "c"} {
		if err := p.AddChild(New(name, "", 0)); err != nil {
			t.Fatal(err)
		}
	}
	for range 2 {
		count := 0
		for c := range p.Children() {
			if c == nil {
				t.Fatal("nil child")
			}
			count++
		}
		if count != 3 {
			t.Fatalf("iterated %d children, want 3", count)
		}
	}
	// early break
	for range p.Children() {
		break
	}
}
