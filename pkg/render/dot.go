// Package render turns a loaded machine model into Graphviz DOT and
// rasterized SVG. Nested states become clusters, initial pseudo-states
// become point nodes and comments become note shapes.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/veretenov/smtree/pkg/model"
)

// Options configures DOT generation.
type Options struct {
	// ShowBehavior adds behavior text to state labels and transition
	// edge labels.
	ShowBehavior bool
}

// ToDOT converts the model's machine into DOT format. The resulting
// string can be rendered with [RenderSVG].
func ToDOT(m *model.Model, opts Options) string {
	w := &dotWriter{opts: opts, anchors: map[*model.Item]string{}}

	w.buf.WriteString("digraph machine {\n")
	w.buf.WriteString("  compound=true;\n")
	w.buf.WriteString("  rankdir=TB;\n")
	fmt.Fprintf(&w.buf, "  label=%q;\n", m.Name())
	w.buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n\n")

	states := m.AddressToItem(m.StatesAddress())
	for row := 0; row < states.ChildCount(); row++ {
		w.writeItem(states.Child(row), 1)
	}

	w.buf.WriteString("\n")
	transitions := m.AddressToItem(m.TransitionsAddress())
	for row := 0; row < transitions.ChildCount(); row++ {
		w.writeTransition(transitions.Child(row))
	}

	w.buf.WriteString("}\n")
	return w.buf.String()
}

type dotWriter struct {
	buf  bytes.Buffer
	opts Options

	// anchors maps composite states to the invisible node edges attach
	// to, since a cluster cannot be an edge endpoint in DOT.
	anchors map[*model.Item]string
}

func (w *dotWriter) writeItem(it *model.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	switch it.Kind() {
	case model.KindInitial:
		fmt.Fprintf(&w.buf, "%s%q [shape=point, width=0.2];\n", indent, it.ID())
	case model.KindComment:
		fmt.Fprintf(&w.buf, "%s%q [shape=note, fillcolor=lightyellow, label=%q];\n", indent, it.ID(), it.Title())
	case model.KindState:
		if hasDiagramChildren(it) {
			w.writeCluster(it, depth)
		} else {
			fmt.Fprintf(&w.buf, "%s%q [label=%q];\n", indent, it.ID(), w.stateLabel(it))
		}
	}
}

func (w *dotWriter) writeCluster(it *model.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	anchor := "__anchor_" + it.ID()
	w.anchors[it] = anchor

	fmt.Fprintf(&w.buf, "%ssubgraph \"cluster_%s\" {\n", indent, it.ID())
	fmt.Fprintf(&w.buf, "%s  label=%q;\n", indent, w.stateLabel(it))
	fmt.Fprintf(&w.buf, "%s  %q [shape=point, style=invis];\n", indent, anchor)
	for row := 0; row < it.ChildCount(); row++ {
		w.writeItem(it.Child(row), depth+1)
	}
	fmt.Fprintf(&w.buf, "%s}\n", indent)
}

func (w *dotWriter) writeTransition(t *model.Item) {
	src, dst := t.Source(), t.Target()
	if src == nil || dst == nil {
		return
	}

	var attrs []string
	from, srcCluster := w.endpoint(src)
	if srcCluster != "" {
		attrs = append(attrs, fmt.Sprintf("ltail=%q", srcCluster))
	}
	to, dstCluster := w.endpoint(dst)
	if dstCluster != "" {
		attrs = append(attrs, fmt.Sprintf("lhead=%q", dstCluster))
	}
	if w.opts.ShowBehavior && t.Behavior() != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", t.Behavior()))
	}

	if len(attrs) > 0 {
		fmt.Fprintf(&w.buf, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
	} else {
		fmt.Fprintf(&w.buf, "  %q -> %q;\n", from, to)
	}
}

// endpoint returns the DOT node an edge should attach to for it, plus the
// cluster name when it is rendered as one.
func (w *dotWriter) endpoint(it *model.Item) (node, cluster string) {
	if anchor, ok := w.anchors[it]; ok {
		return anchor, "cluster_" + it.ID()
	}
	return it.ID(), ""
}

func (w *dotWriter) stateLabel(it *model.Item) string {
	if w.opts.ShowBehavior && it.Behavior() != "" {
		return it.Title() + "\n" + it.Behavior()
	}
	return it.Title()
}

// hasDiagramChildren reports whether a state contains nested diagram
// content, as opposed to only its action node.
func hasDiagramChildren(it *model.Item) bool {
	for row := 0; row < it.ChildCount(); row++ {
		if it.Child(row).Kind() != model.KindAction {
			return true
		}
	}
	return false
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
