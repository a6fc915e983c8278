package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// GraphML attribute names recognized by the decoder. Keys are matched by
// their declared attr.name, not by the opaque key id, so documents from
// different editors interoperate as long as the names line up.
const (
	attrKind    = "kind"
	attrTitle   = "title"
	attrBody    = "body"
	attrRect    = "rect"
	attrPoint   = "point"
	attrName    = "name"
	attrVersion = "version"
	attrSource  = "sourcePoint"
	attrTarget  = "targetPoint"
	attrPath    = "path"
)

// ErrNotGraphML is returned when the input is well-formed XML but not a
// graphml document.
var ErrNotGraphML = errors.New("not a graphml document")

// ReadGraphML decodes a GraphML diagram from r. Hierarchy is expressed
// the GraphML way: a nested <graph> element inside a <node> holds the
// node's children. Geometry travels in <data> elements as comma-separated
// coordinates.
func ReadGraphML(r io.Reader) (*Document, error) {
	var root xmlGraphML
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if root.XMLName.Local != "graphml" {
		return nil, ErrNotGraphML
	}

	names := make(map[string]string, len(root.Keys)) // key id -> attr.name
	for _, k := range root.Keys {
		names[k.ID] = k.AttrName
	}

	doc := &Document{
		Name:          root.Graph.data(names, attrName),
		FormatVersion: root.Graph.data(names, attrVersion),
	}

	var err error
	if doc.Nodes, err = convertXMLNodes(root.Graph.Nodes, names); err != nil {
		return nil, err
	}
	for _, xe := range root.Graph.Edges {
		e := Edge{
			ID:       xe.ID,
			SourceID: xe.Source,
			TargetID: xe.Target,
			Body:     lookupData(xe.Data, names, attrBody),
		}
		if e.SourceAnchor, err = parsePoint(lookupData(xe.Data, names, attrSource)); err != nil {
			return nil, fmt.Errorf("edge %q: %w", xe.ID, err)
		}
		if e.TargetAnchor, err = parsePoint(lookupData(xe.Data, names, attrTarget)); err != nil {
			return nil, fmt.Errorf("edge %q: %w", xe.ID, err)
		}
		if e.RoutePoints, err = parsePath(lookupData(xe.Data, names, attrPath)); err != nil {
			return nil, fmt.Errorf("edge %q: %w", xe.ID, err)
		}
		doc.Edges = append(doc.Edges, e)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadGraphMLFile reads a GraphML diagram from path.
func ReadGraphMLFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraphML(f)
}

func convertXMLNodes(xns []xmlNode, names map[string]string) ([]Node, error) {
	var out []Node
	for _, xn := range xns {
		n := Node{
			ID:    xn.ID,
			Kind:  lookupData(xn.Data, names, attrKind),
			Title: lookupData(xn.Data, names, attrTitle),
			Body:  lookupData(xn.Data, names, attrBody),
		}
		if n.Kind == "" {
			n.Kind = KindState
		}
		var err error
		if n.Kind == KindInitial {
			var p Point
			if p, err = parsePoint(lookupData(xn.Data, names, attrPoint)); err != nil {
				return nil, fmt.Errorf("node %q: %w", xn.ID, err)
			}
			n.Rect = Rect{X: p.X, Y: p.Y}
		} else if n.Rect, err = parseRect(lookupData(xn.Data, names, attrRect)); err != nil {
			return nil, fmt.Errorf("node %q: %w", xn.ID, err)
		}
		if xn.Graph != nil {
			if n.Children, err = convertXMLNodes(xn.Graph.Nodes, names); err != nil {
				return nil, err
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// =============================================================================
// XML shapes
// =============================================================================

type xmlGraphML struct {
	XMLName xml.Name `xml:"graphml"`
	Keys    []xmlKey `xml:"key"`
	Graph   xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	AttrName string `xml:"attr.name,attr"`
}

type xmlGraph struct {
	Data  []xmlData `xml:"data"`
	Nodes []xmlNode `xml:"node"`
	Edges []xmlEdge `xml:"edge"`
}

func (g xmlGraph) data(names map[string]string, name string) string {
	return lookupData(g.Data, names, name)
}

type xmlNode struct {
	ID    string    `xml:"id,attr"`
	Data  []xmlData `xml:"data"`
	Graph *xmlGraph `xml:"graph"`
}

type xmlEdge struct {
	ID     string    `xml:"id,attr"`
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// lookupData finds the data element whose declared attr.name (or raw key,
// for documents without key declarations) matches name.
func lookupData(data []xmlData, names map[string]string, name string) string {
	for _, d := range data {
		if names[d.Key] == name || d.Key == name {
			return d.Value
		}
	}
	return ""
}

// =============================================================================
// Coordinate parsing
// =============================================================================

func parseFloats(s string, want int) ([]float64, error) {
	if s == "" {
		return make([]float64, want), nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d coordinates, got %d", want, len(parts))
	}
	out := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func parsePoint(s string) (Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return Point{}, err
	}
	return Point{X: v[0], Y: v[1]}, nil
}

func parseRect(s string) (Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

// parsePath decodes a semicolon-separated list of points.
func parsePath(s string) ([]Point, error) {
	if s == "" {
		return nil, nil
	}
	var out []Point
	for _, part := range strings.Split(s, ";") {
		p, err := parsePoint(part)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
