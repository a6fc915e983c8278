// Package document defines the interchange form of a state machine
// diagram: a forest of typed nodes with geometry plus a flat list of
// edges with routing. It is the input collaborator of the model's
// importer and deliberately knows nothing about the model's tree.
//
// Two on-disk encodings are supported: a canonical JSON form (see
// [Read]) and a GraphML subset used by graphical editors for the same
// diagrams (see [ReadGraphML]).
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Node kinds accepted in a document.
const (
	KindState   = "state"
	KindInitial = "initial"
	KindComment = "comment"
)

var (
	// ErrUnknownNodeKind is returned when a node's kind tag is not one of
	// the Kind* constants.
	ErrUnknownNodeKind = errors.New("unknown node kind")

	// ErrMissingEndpoint is returned when an edge omits its source or
	// target identifier.
	ErrMissingEndpoint = errors.New("edge is missing an endpoint identifier")
)

// Point is a position in diagram coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a position plus size in diagram coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Node is one vertex of the diagram forest. Children nest arbitrarily
// deep; the top level of the forest represents the machine's own boundary.
type Node struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	Rect     Rect   `json:"rect"`
	Children []Node `json:"children,omitempty"`
}

// Edge is a directed connection between two nodes of the forest, with the
// anchor points on both shapes and the ordered interior routing points.
type Edge struct {
	ID           string  `json:"id"`
	SourceID     string  `json:"source_id"`
	TargetID     string  `json:"target_id"`
	Body         string  `json:"body,omitempty"`
	SourceAnchor Point   `json:"source_anchor"`
	TargetAnchor Point   `json:"target_anchor"`
	RoutePoints  []Point `json:"route_points,omitempty"`
}

// Document is a complete diagram: metadata, the node forest and the edge
// list.
type Document struct {
	Name          string `json:"name,omitempty"`
	FormatVersion string `json:"format_version,omitempty"`
	Nodes         []Node `json:"nodes"`
	Edges         []Edge `json:"edges,omitempty"`
}

// Read decodes a JSON document from r and validates its structure.
// A malformed document yields an error and no partial result.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadFile reads a JSON document from path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Validate checks that every node carries a known kind and every edge
// names both endpoints.
func (d *Document) Validate() error {
	if err := validateNodes(d.Nodes); err != nil {
		return err
	}
	for _, e := range d.Edges {
		if e.SourceID == "" || e.TargetID == "" {
			return fmt.Errorf("edge %q: %w", e.ID, ErrMissingEndpoint)
		}
	}
	return nil
}

func validateNodes(nodes []Node) error {
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case KindState, KindInitial, KindComment:
		default:
			return fmt.Errorf("node %q: %q: %w", n.ID, n.Kind, ErrUnknownNodeKind)
		}
		if err := validateNodes(n.Children); err != nil {
			return err
		}
	}
	return nil
}
