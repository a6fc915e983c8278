package model

import (
	"fmt"
	"strings"

	"github.com/veretenov/smtree/pkg/document"
)

// IDRename records one identifier the registry had to disambiguate during
// import because the document reused it.
type IDRename struct {
	Requested string // identifier the document asked for
	Effective string // identifier the item is registered under
}

// LoadReport summarizes a completed load. Renames are surfaced here so
// callers can warn about identifiers that no longer resolve as written in
// the document.
type LoadReport struct {
	States      int
	Initials    int
	Comments    int
	Transitions int
	Renamed     []IDRename
}

// Load destroys the current tree and registry and rebuilds both from doc.
// The whole operation sits inside one reset notification bracket: the
// closing half fires even when edge binding fails, so observers always see
// a consistent tree.
//
// Node import walks the forest depth-first. Top-level nodes stand for the
// machine's own boundary and are not inserted themselves, only their
// descendants are, as children of the states aggregate. Every inserted
// item is registered before its children are visited, so identifier
// disambiguation is fixed in forest-traversal order.
//
// Edge binding is two-phase: all endpoints are resolved first, then all
// transitions are attached. An unresolved endpoint returns
// [ErrUnresolvedEndpoint] with the node tree intact and no transitions
// attached; the report produced so far accompanies the error.
func (m *Model) Load(doc *document.Document) (*LoadReport, error) {
	defer m.beginReset().End()
	m.initTrees()

	m.formatVersion = doc.FormatVersion
	if doc.Name != "" {
		m.machine.title = doc.Name
	}

	report := &LoadReport{}
	m.importNodes(doc.Nodes, m.states, true, report)

	// Phase one: resolve every endpoint before touching the tree.
	type binding struct {
		edge        *document.Edge
		source, target *Item
	}
	bindings := make([]binding, 0, len(doc.Edges))
	for i := range doc.Edges {
		e := &doc.Edges[i]
		source, ok := m.registry.Resolve(e.SourceID)
		if !ok {
			return report, fmt.Errorf("edge %q: source %q: %w", e.ID, e.SourceID, ErrUnresolvedEndpoint)
		}
		target, ok := m.registry.Resolve(e.TargetID)
		if !ok {
			return report, fmt.Errorf("edge %q: target %q: %w", e.ID, e.TargetID, ErrUnresolvedEndpoint)
		}
		bindings = append(bindings, binding{edge: e, source: source, target: target})
	}

	// Phase two: attach transitions in document order.
	for _, b := range bindings {
		item := NewTransition(b.source, b.target, b.edge.ID, strings.TrimSpace(b.edge.Body), TransitionGeometry{
			SourcePort: Point{X: b.edge.SourceAnchor.X, Y: b.edge.SourceAnchor.Y},
			TargetPort: Point{X: b.edge.TargetAnchor.X, Y: b.edge.TargetAnchor.Y},
			Path:       convertPath(b.edge.RoutePoints),
		})
		m.register(b.edge.ID, item, report)
		m.transitions.AddChild(item)
		report.Transitions++
	}

	return report, nil
}

// importNodes converts one level of the document forest. Top-level nodes
// are skipped in favor of their children; everything below attaches under
// its natural parent.
func (m *Model) importNodes(nodes []document.Node, parent *Item, toplevel bool, report *LoadReport) {
	for i := range nodes {
		node := &nodes[i]
		if toplevel {
			m.importNodes(node.Children, parent, false, report)
			continue
		}
		item := m.convertNode(node, report)
		parent.AddChild(item)
		m.importNodes(node.Children, item, false, report)
	}
}

// convertNode builds and registers the item for one document node.
// Registration happens here, before any child is visited.
func (m *Model) convertNode(node *document.Node, report *LoadReport) *Item {
	switch node.Kind {
	case document.KindInitial:
		item := NewInitialState(node.ID, Point{X: node.Rect.X, Y: node.Rect.Y})
		m.register(node.ID, item, report)
		report.Initials++
		return item
	case document.KindComment:
		// Comments are structurally unnamed: whatever identifier the
		// document carries is ignored in favor of a synthetic one.
		item := NewComment(m.registry.GenerateID(), node.Body, convertRect(node.Rect))
		m.registry.Register(item.ID(), item)
		report.Comments++
		return item
	default:
		item := NewState(node.ID, node.Title, strings.TrimSpace(node.Body), convertRect(node.Rect))
		m.register(node.ID, item, report)
		report.States++
		return item
	}
}

// register inserts item under id and records the rename when the registry
// had to disambiguate.
func (m *Model) register(id string, item *Item, report *LoadReport) {
	if effective := m.registry.Register(id, item); effective != id {
		report.Renamed = append(report.Renamed, IDRename{Requested: id, Effective: effective})
	}
}

func convertRect(r document.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func convertPath(points []document.Point) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
