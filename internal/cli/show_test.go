package cli

import (
	"strings"
	"testing"

	"github.com/veretenov/smtree/pkg/document"
	"github.com/veretenov/smtree/pkg/model"
)

func fixtureModel(t *testing.T) *model.Model {
	t.Helper()
	doc := &document.Document{
		Name: "Traffic Light",
		Nodes: []document.Node{
			{
				ID:   "boundary",
				Kind: document.KindState,
				Children: []document.Node{
					{ID: "init", Kind: document.KindInitial},
					{
						ID: "red", Kind: document.KindState, Title: "Red", Body: "stop",
						Children: []document.Node{
							{ID: "blink", Kind: document.KindState, Title: "Blinking"},
						},
					},
					{ID: "green", Kind: document.KindState, Title: "Green"},
					{ID: "note", Kind: document.KindComment, Body: "check timings"},
				},
			},
		},
		Edges: []document.Edge{
			{ID: "t1", SourceID: "init", TargetID: "red"},
			{ID: "t2", SourceID: "red", TargetID: "green"},
		},
	}

	m := model.New()
	if _, err := m.Load(doc); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return m
}

func TestPrintTree(t *testing.T) {
	var buf strings.Builder
	printTree(&buf, fixtureModel(t), showOpts{})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("printed %d lines, want 11:\n%s", len(lines), out)
	}

	// One line per item, indented two spaces per depth level.
	wantPrefix := []string{
		"Traffic Light",
		"  States",
		"    initial",
		"    Red",
		"      stop",
		"      Blinking",
		"    Green",
		"    check timings",
		"  Transitions",
		"    initial → Red",
		"    Red → Green",
	}
	for i, want := range wantPrefix {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
		if got := len(lines[i]) - len(strings.TrimLeft(lines[i], " ")); got != len(want)-len(strings.TrimLeft(want, " ")) {
			t.Errorf("line %d indentation = %d spaces, want %d", i, got, len(want)-len(strings.TrimLeft(want, " ")))
		}
	}
}

func TestPrintTreeIDs(t *testing.T) {
	var buf strings.Builder
	printTree(&buf, fixtureModel(t), showOpts{ids: true})

	out := buf.String()
	for _, want := range []string{"(red)", "(green)", "(t1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing identifier %s:\n%s", want, out)
		}
	}
	// Aggregates carry no identifier, so no empty parens appear.
	if strings.Contains(out, "()") {
		t.Errorf("output contains empty identifier parens:\n%s", out)
	}
}

func TestGlyphCoversAllKinds(t *testing.T) {
	kinds := []model.Kind{
		model.KindRoot, model.KindMachine, model.KindStates, model.KindTransitions,
		model.KindState, model.KindInitial, model.KindComment, model.KindTransition,
		model.KindAction,
	}
	for _, k := range kinds {
		if glyph(k) == "" {
			t.Errorf("glyph(%v) is empty", k)
		}
	}
}
