package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, b BrowserModel, keys ...string) BrowserModel {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		next, _ := b.Update(msg)
		var ok bool
		if b, ok = next.(BrowserModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return b
}

// Row layout of the fixture machine, depth-first from the machine node:
//
//	0 Traffic Light
//	1   States
//	2     initial
//	3     Red
//	4       stop (action)
//	5       Blinking
//	6     Green
//	7     check timings
//	8   Transitions
//	9     initial → Red
//	10    Red → Green
func TestBrowserRows(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))

	if len(b.rows) != 11 {
		t.Fatalf("visible rows = %d, want 11", len(b.rows))
	}
	if b.rows[0].depth != 0 || b.rows[3].depth != 2 || b.rows[4].depth != 3 {
		t.Errorf("depths = %d, %d, %d", b.rows[0].depth, b.rows[3].depth, b.rows[4].depth)
	}
}

func TestBrowserNavigation(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))

	b = press(t, b, "j", "j", "j")
	if b.cursor != 3 {
		t.Errorf("cursor = %d, want 3", b.cursor)
	}
	b = press(t, b, "k")
	if b.cursor != 2 {
		t.Errorf("cursor = %d, want 2", b.cursor)
	}

	// The cursor clamps at both ends.
	b = press(t, b, "k", "k", "k")
	if b.cursor != 0 {
		t.Errorf("cursor = %d, want 0", b.cursor)
	}
}

func TestBrowserFolding(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))

	// Collapse Red: its action node and substate disappear.
	b = press(t, b, "j", "j", "j", "enter")
	if len(b.rows) != 9 {
		t.Fatalf("visible rows after collapse = %d, want 9", len(b.rows))
	}
	b = press(t, b, "enter")
	if len(b.rows) != 11 {
		t.Errorf("visible rows after expand = %d, want 11", len(b.rows))
	}
}

func TestBrowserRename(t *testing.T) {
	m := fixtureModel(t)
	b := newBrowserModel(m)

	// Rename Green in place.
	b = press(t, b, "j", "j", "j", "j", "j", "j", "e")
	if !b.editing {
		t.Fatal("e did not enter editing mode")
	}
	if b.input != "Green" {
		t.Errorf("edit buffer = %q, want current title", b.input)
	}

	b = press(t, b, "backspace", "backspace", "backspace", "backspace", "backspace")
	b = press(t, b, "Amber", "enter")
	if b.editing {
		t.Error("enter did not leave editing mode")
	}
	green, _ := m.Registry().Resolve("green")
	if green.Title() != "Amber" {
		t.Errorf("title = %q, want Amber", green.Title())
	}
}

func TestBrowserRenameNotEditable(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))

	// The transitions aggregate is not editable.
	b = press(t, b, "j", "j", "j", "j", "j", "j", "j", "j", "e")
	if b.editing {
		t.Error("editing entered on a non-editable item")
	}
	if b.status != "not editable" {
		t.Errorf("status = %q", b.status)
	}
}

func TestBrowserYankPut(t *testing.T) {
	m := fixtureModel(t)
	b := newBrowserModel(m)

	// Yank Green, put it onto Red.
	b = press(t, b, "j", "j", "j", "j", "j", "j", "y")
	if b.payload == nil {
		t.Fatalf("yank produced no payload, status %q", b.status)
	}
	if !strings.Contains(b.status, "Green") {
		t.Errorf("status = %q", b.status)
	}

	b = press(t, b, "k", "k", "k", "p")
	if b.payload != nil {
		t.Error("payload survived the put")
	}
	green, _ := m.Registry().Resolve("green")
	red, _ := m.Registry().Resolve("red")
	if green.Parent() != red {
		t.Errorf("green parent = %v, want red", green.Parent())
	}

	// The row list reflects the move.
	if len(b.rows) != 11 {
		t.Errorf("visible rows = %d, want 11", len(b.rows))
	}
}

func TestBrowserYankNotDraggable(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))

	b = press(t, b, "y") // machine node
	if b.payload != nil {
		t.Error("yanked an undraggable item")
	}
	if b.status != "not draggable" {
		t.Errorf("status = %q", b.status)
	}
}

func TestBrowserPutWithoutYank(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))

	b = press(t, b, "p")
	if b.status != "nothing yanked" {
		t.Errorf("status = %q", b.status)
	}
}

func TestBrowserView(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))
	view := b.View()

	for _, want := range []string{"Traffic Light", "States", "Red", "[1/11]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "▸") {
		t.Error("view missing cursor marker")
	}
}

func TestBrowserQuit(t *testing.T) {
	b := newBrowserModel(fixtureModel(t))
	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}
