package model

import "testing"

func TestNewStateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "Preserved", title: "Idle", want: "Idle"},
		{name: "Placeholder", title: "", want: PlaceholderTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewState("s1", tt.title, "", Rect{})
			if got := it.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBehaviorChild(t *testing.T) {
	with := NewState("s1", "Idle", "enter()", Rect{})
	if with.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d, want 1", with.ChildCount())
	}
	action := with.Child(0)
	if action.Kind() != KindAction {
		t.Errorf("child kind = %v, want action", action.Kind())
	}
	if got := with.Behavior(); got != "enter()" {
		t.Errorf("Behavior() = %q, want enter()", got)
	}

	without := NewState("s2", "Idle", "", Rect{})
	if without.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0 for empty behavior", without.ChildCount())
	}
	if got := without.Behavior(); got != "" {
		t.Errorf("Behavior() = %q, want empty", got)
	}
}

func TestRowTracksPosition(t *testing.T) {
	parent := NewState("p", "Parent", "", Rect{})
	a := NewState("a", "A", "", Rect{})
	b := NewState("b", "B", "", Rect{})
	c := NewState("c", "C", "", Rect{})

	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	for i, it := range []*Item{a, b, c} {
		if it.Row() != i {
			t.Errorf("Row() of child %d = %d", i, it.Row())
		}
		if it.Parent() != parent {
			t.Errorf("Parent() of child %d not set", i)
		}
	}

	parent.RemoveChild(b)
	if b.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if parent.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", parent.ChildCount())
	}
	if c.Row() != 1 {
		t.Errorf("Row() of c after removal = %d, want 1", c.Row())
	}

	// Re-adding appends at the end; reordering is always remove+add.
	parent.AddChild(b)
	if b.Row() != 2 {
		t.Errorf("Row() of re-added b = %d, want 2", b.Row())
	}
}

func TestTransitionTitleFollowsEndpoints(t *testing.T) {
	src := NewState("a", "Off", "", Rect{})
	dst := NewState("b", "On", "", Rect{})
	tr := NewTransition(src, dst, "t1", "", TransitionGeometry{})

	if got := tr.Title(); got != "Off → On" {
		t.Errorf("Title() = %q, want Off → On", got)
	}

	src.title = "Sleeping"
	if got := tr.Title(); got != "Sleeping → On" {
		t.Errorf("Title() after endpoint rename = %q", got)
	}
}

func TestChildOutOfBounds(t *testing.T) {
	it := NewState("s", "S", "", Rect{})
	if it.Child(0) != nil {
		t.Error("Child(0) of leaf is not nil")
	}
	if it.Child(-1) != nil {
		t.Error("Child(-1) is not nil")
	}
}
