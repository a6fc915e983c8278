package model

import "slices"

// Kind identifies the role of an item in the machine tree.
//
// The set is closed: behavior throughout the package (capabilities,
// rendering glyphs, rename rules) is selected by exhaustive switches over
// these values rather than by subtyping.
type Kind int

const (
	// KindRoot is the invisible tree root. Exactly one exists per model.
	KindRoot Kind = iota
	// KindMachine is the state machine node, the sole child of the root.
	KindMachine
	// KindStates is the aggregate grouping all states, initial states and
	// comments. Always row 0 under the machine node.
	KindStates
	// KindTransitions is the aggregate grouping all transitions.
	// Always row 1 under the machine node.
	KindTransitions
	// KindState is a regular state, possibly nested in another state.
	KindState
	// KindInitial is an initial pseudo-state, located by a single point.
	KindInitial
	// KindComment is a free-floating comment box.
	KindComment
	// KindTransition links two states. Transitions are always direct
	// children of the transitions aggregate, never nested, even when their
	// endpoints are nested states.
	KindTransition
	// KindAction holds the behavior text of a state or transition.
	KindAction
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindMachine:
		return "machine"
	case KindStates:
		return "states"
	case KindTransitions:
		return "transitions"
	case KindState:
		return "state"
	case KindInitial:
		return "initial"
	case KindComment:
		return "comment"
	case KindTransition:
		return "transition"
	case KindAction:
		return "action"
	default:
		return "unknown"
	}
}

// Addressable reports whether items of this kind carry a unique identifier
// in the registry. Structural aggregates and the root do not.
func (k Kind) Addressable() bool {
	switch k {
	case KindMachine, KindState, KindInitial, KindComment, KindTransition:
		return true
	default:
		return false
	}
}

// Default display titles.
const (
	// DefaultMachineTitle is used until a loaded document supplies a name.
	DefaultMachineTitle = "State Machine"

	// PlaceholderTitle is assigned to states the source document leaves
	// unnamed.
	PlaceholderTitle = "Unnamed state"

	statesTitle      = "States"
	transitionsTitle = "Transitions"
)

// Point is a position in diagram coordinates.
type Point struct {
	X, Y float64
}

// Rect is a position plus size in diagram coordinates.
type Rect struct {
	X, Y, W, H float64
}

// TransitionGeometry describes the routing of a transition: the anchor
// points on the source and target shapes and the ordered interior points
// of the polyline between them.
type TransitionGeometry struct {
	SourcePort Point
	TargetPort Point
	Path       []Point
}

// Item is a node in the machine tree. Items own their children; parent,
// source and target are non-owning back references. The zero value is not
// usable, use the New* constructors.
type Item struct {
	kind  Kind
	id    string
	title string

	point Point // initial state position
	rect  Rect  // state and comment bounds
	geom  TransitionGeometry

	parent   *Item
	children []*Item

	// Transition endpoints. A transition never controls the lifetime of
	// its endpoints, it only observes them.
	source, target *Item
}

// NewState creates a state item. An empty title is replaced with
// [PlaceholderTitle]. A non-empty behavior text becomes an action child.
func NewState(id, title, behavior string, rect Rect) *Item {
	if title == "" {
		title = PlaceholderTitle
	}
	it := &Item{kind: KindState, id: id, title: title, rect: rect}
	attachBehavior(it, behavior)
	return it
}

// NewInitialState creates an initial pseudo-state located at point.
func NewInitialState(id string, point Point) *Item {
	return &Item{kind: KindInitial, id: id, title: "initial", point: point}
}

// NewComment creates a comment item. The body is kept verbatim, including
// surrounding whitespace, and doubles as the display title.
func NewComment(id, body string, rect Rect) *Item {
	return &Item{kind: KindComment, id: id, title: body, rect: rect}
}

// NewTransition creates a transition between two previously created items.
// A non-empty behavior text becomes an action child.
func NewTransition(source, target *Item, id, behavior string, geom TransitionGeometry) *Item {
	it := &Item{kind: KindTransition, id: id, geom: geom, source: source, target: target}
	attachBehavior(it, behavior)
	return it
}

func attachBehavior(it *Item, behavior string) {
	if behavior == "" {
		return
	}
	it.AddChild(&Item{kind: KindAction, title: behavior})
}

// Kind returns the item's kind.
func (it *Item) Kind() Kind { return it.kind }

// ID returns the item's effective identifier. Empty for the root, the
// aggregates and action items.
func (it *Item) ID() string { return it.id }

// Title returns the display text. A transition's title is derived from its
// endpoints so it stays current when an endpoint is renamed.
func (it *Item) Title() string {
	if it.kind == KindTransition && it.source != nil && it.target != nil {
		return it.source.Title() + " → " + it.target.Title()
	}
	return it.title
}

// Behavior returns the behavior text of a state or transition, or the
// empty string when there is none.
func (it *Item) Behavior() string {
	for _, c := range it.children {
		if c.kind == KindAction {
			return c.title
		}
	}
	return ""
}

// Point returns the position of an initial state.
func (it *Item) Point() Point { return it.point }

// Rect returns the bounds of a state or comment.
func (it *Item) Rect() Rect { return it.rect }

// Geometry returns the routing geometry of a transition.
func (it *Item) Geometry() TransitionGeometry { return it.geom }

// Source returns a transition's source endpoint, nil for other kinds.
func (it *Item) Source() *Item { return it.source }

// Target returns a transition's target endpoint, nil for other kinds.
func (it *Item) Target() *Item { return it.target }

// Parent returns the owning parent, nil for the root.
func (it *Item) Parent() *Item { return it.parent }

// ChildCount returns the number of children.
func (it *Item) ChildCount() int { return len(it.children) }

// Child returns the child at row, or nil when row is out of bounds.
func (it *Item) Child(row int) *Item {
	if row < 0 || row >= len(it.children) {
		return nil
	}
	return it.children[row]
}

// Row returns this item's index within its parent's children, or 0 for
// the root. The value always equals the position AddChild established,
// reordering happens only through RemoveChild plus AddChild.
func (it *Item) Row() int {
	if it.parent == nil {
		return 0
	}
	if i := slices.Index(it.parent.children, it); i >= 0 {
		return i
	}
	return 0
}

// AddChild appends child and takes ownership of it.
func (it *Item) AddChild(child *Item) {
	child.parent = it
	it.children = append(it.children, child)
}

// RemoveChild unlinks child without destroying it. The caller becomes
// responsible for the detached subtree.
func (it *Item) RemoveChild(child *Item) {
	if i := slices.Index(it.children, child); i >= 0 {
		it.children = slices.Delete(it.children, i, i+1)
		child.parent = nil
	}
}

// hasDescendant reports whether other is it or lives in it's subtree.
func (it *Item) hasDescendant(other *Item) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == it {
			return true
		}
	}
	return false
}
