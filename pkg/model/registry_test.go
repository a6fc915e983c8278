package model

import "testing"

func TestGenerateIDAbsent(t *testing.T) {
	r := NewRegistry()

	// Interleave generation and registration; every generated identifier
	// must be free at the moment it is returned.
	for i := 0; i < 100; i++ {
		id := r.GenerateID()
		if _, taken := r.Resolve(id); taken {
			t.Fatalf("GenerateID returned occupied id %q", id)
		}
		r.Register(id, &Item{kind: KindComment})
	}
	if r.Len() != 100 {
		t.Errorf("Len() = %d, want 100", r.Len())
	}
}

func TestRegisterDisambiguation(t *testing.T) {
	r := NewRegistry()
	first := &Item{kind: KindState}
	second := &Item{kind: KindState}
	third := &Item{kind: KindState}

	if got := r.Register("a", first); got != "a" {
		t.Fatalf("first Register = %q, want a", got)
	}
	if got := r.Register("a", second); got != "a_" {
		t.Errorf("second Register = %q, want a_", got)
	}
	if got := r.Register("a", third); got != "a__" {
		t.Errorf("third Register = %q, want a__", got)
	}

	// The original identifier still resolves to the first item.
	if it, ok := r.Resolve("a"); !ok || it != first {
		t.Errorf("Resolve(a) = %v, %v; want first item", it, ok)
	}
	if it, ok := r.Resolve("a_"); !ok || it != second {
		t.Errorf("Resolve(a_) = %v, %v; want second item", it, ok)
	}

	// The effective identifier is stamped onto the item.
	if second.ID() != "a_" {
		t.Errorf("second.ID() = %q, want a_", second.ID())
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	r.Register("x", &Item{kind: KindState})
	r.Clear()

	if r.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", r.Len())
	}
	if _, ok := r.Resolve("x"); ok {
		t.Error("Resolve(x) succeeded after Clear")
	}
}
