package model

// Address identifies an item's position for view consumption: the row and
// column within its parent plus an opaque reference to the item itself.
// The tree is single-column, so only column 0 addresses are ever valid.
//
// Addresses are values and can be compared with ==. They stay valid until
// the next structural mutation touching their parent, and every address is
// invalidated by a full reset or load.
type Address struct {
	row, column int
	item        *Item
}

// IsValid reports whether the address references an item.
func (a Address) IsValid() bool { return a.item != nil }

// Row returns the row within the parent.
func (a Address) Row() int { return a.row }

// Column returns the column, always 0 for valid addresses.
func (a Address) Column() int { return a.column }

// Capability is a bitset describing what a view may do with an address.
type Capability uint8

const (
	// CapDraggable marks drag sources (states and initial states).
	CapDraggable Capability = 1 << iota
	// CapDroppable marks drop targets (states and the states aggregate).
	CapDroppable
	// CapEditable marks label-editable items (machine, states, actions).
	CapEditable
)

// Has reports whether all bits in want are set.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Model owns the machine tree and the identifier registry and exposes the
// addressing, rename and move operations a tree view is built against.
//
// A model has a single logical owner: all operations execute synchronously
// on the calling goroutine and the model is not safe for concurrent use.
type Model struct {
	root        *Item
	machine     *Item
	states      *Item
	transitions *Item

	registry *Registry
	listener Listener

	formatVersion string
}

// New creates a model holding an empty machine skeleton.
func New() *Model {
	m := &Model{registry: NewRegistry(), listener: NoopListener{}}
	m.initTrees()
	return m
}

// initTrees builds the fixed skeleton: one root, one machine child, and
// the states and transitions aggregates at rows 0 and 1. The registry is
// rebuilt in the same step, never separately.
func (m *Model) initTrees() {
	m.registry.Clear()
	m.root = &Item{kind: KindRoot}
	m.machine = &Item{kind: KindMachine, title: DefaultMachineTitle}
	m.states = &Item{kind: KindStates, title: statesTitle}
	m.transitions = &Item{kind: KindTransitions, title: transitionsTitle}
	m.root.AddChild(m.machine)
	m.machine.AddChild(m.states)
	m.machine.AddChild(m.transitions)
	m.registry.Register(m.registry.GenerateID(), m.machine)
	m.formatVersion = ""
}

// SetListener installs the change notification receiver. A nil listener
// restores the no-op default.
func (m *Model) SetListener(l Listener) {
	if l == nil {
		l = NoopListener{}
	}
	m.listener = l
}

// Reset destroys the tree and registry and rebuilds the empty skeleton,
// bracketed by the whole-tree reset notifications.
func (m *Model) Reset() {
	defer m.beginReset().End()
	m.initTrees()
}

// Registry exposes the identifier registry for read-side lookups.
func (m *Model) Registry() *Registry { return m.registry }

// Name returns the machine's display name.
func (m *Model) Name() string { return m.machine.title }

// FormatVersion returns the format version recorded from the last loaded
// document, or the empty string before the first load.
func (m *Model) FormatVersion() string { return m.formatVersion }

// =============================================================================
// Anchor addresses
// =============================================================================

// RootAddress is the absolute tree root sentinel. Its parent is the
// invalid address.
func (m *Model) RootAddress() Address { return Address{row: 0, column: 0, item: m.root} }

// MachineAddress is the state machine node, the sole row at depth 0.
func (m *Model) MachineAddress() Address { return Address{row: 0, column: 0, item: m.machine} }

// StatesAddress is the aggregate holding all states, initial states and
// comments.
func (m *Model) StatesAddress() Address { return Address{row: 0, column: 0, item: m.states} }

// TransitionsAddress is the aggregate holding all transitions.
func (m *Model) TransitionsAddress() Address { return Address{row: 1, column: 0, item: m.transitions} }

// =============================================================================
// Address translation
// =============================================================================

// RowCount returns the number of child rows under addr. The invalid
// address and the root sentinel both count the root's children, so the
// machine node is the sole row at the top of the view.
func (m *Model) RowCount(addr Address) int {
	if addr.column > 0 {
		return 0
	}
	if !addr.IsValid() || addr.item == m.root {
		return m.root.ChildCount()
	}
	return addr.item.ChildCount()
}

// ColumnCount returns 1, the tree is single-column.
func (m *Model) ColumnCount() int { return 1 }

// HasIndex reports whether (row, column) denotes an existing child of
// parent.
func (m *Model) HasIndex(row, column int, parent Address) bool {
	if column > 0 {
		return false
	}
	if !parent.IsValid() {
		return row == 0
	}
	return row >= 0 && row < parent.item.ChildCount()
}

// Index returns the address of the child at (row, column) under parent,
// or the invalid address when parent is invalid or row is out of bounds.
func (m *Model) Index(row, column int, parent Address) Address {
	if !parent.IsValid() || !m.HasIndex(row, column, parent) {
		return Address{}
	}
	child := parent.item.Child(row)
	if child == nil {
		return Address{}
	}
	return Address{row: row, column: column, item: child}
}

// Parent returns the address of addr's parent. The machine's parent is
// the root sentinel, the root's parent is the invalid address.
func (m *Model) Parent(addr Address) Address {
	if !addr.IsValid() || addr.item == m.root {
		return Address{}
	}
	parent := addr.item.Parent()
	if parent == nil || parent == m.root {
		return m.RootAddress()
	}
	return Address{row: parent.Row(), column: 0, item: parent}
}

// ItemToAddress returns the address of item. The nil item maps to the
// invalid address and the root maps to the root sentinel, so the function
// is the inverse of [Model.AddressToItem] for every address reachable
// through [Model.Index].
func (m *Model) ItemToAddress(item *Item) Address {
	if item == nil {
		return Address{}
	}
	if item == m.root {
		return m.RootAddress()
	}
	return Address{row: item.Row(), column: 0, item: item}
}

// AddressToItem returns the item behind addr. The invalid address maps to
// the root.
func (m *Model) AddressToItem(addr Address) *Item {
	if !addr.IsValid() {
		return m.root
	}
	return addr.item
}

// =============================================================================
// Classification
// =============================================================================

// IsState reports whether addr denotes a regular state.
func (m *Model) IsState(addr Address) bool { return m.kindAt(addr) == KindState }

// IsInitialState reports whether addr denotes an initial pseudo-state.
func (m *Model) IsInitialState(addr Address) bool { return m.kindAt(addr) == KindInitial }

// IsTransition reports whether addr denotes a transition.
func (m *Model) IsTransition(addr Address) bool { return m.kindAt(addr) == KindTransition }

// IsAction reports whether addr denotes a behavior text node.
func (m *Model) IsAction(addr Address) bool { return m.kindAt(addr) == KindAction }

// IsTrivial reports whether addr is invalid or one of the four anchors.
func (m *Model) IsTrivial(addr Address) bool {
	return !addr.IsValid() ||
		addr.item == m.root ||
		addr.item == m.machine ||
		addr.item == m.states ||
		addr.item == m.transitions
}

func (m *Model) kindAt(addr Address) Kind {
	if !addr.IsValid() {
		return KindRoot
	}
	return addr.item.kind
}

// Capabilities returns the drag, drop and edit capabilities of addr.
// The states aggregate accepts drops; states and initial states are drag
// sources; a state is additionally a drop target and label-editable; the
// machine label and action nodes are label-editable.
func (m *Model) Capabilities(addr Address) Capability {
	if !addr.IsValid() || addr.column != 0 {
		return 0
	}
	switch addr.item.kind {
	case KindStates:
		return CapDroppable
	case KindState:
		return CapDraggable | CapDroppable | CapEditable
	case KindInitial:
		return CapDraggable
	case KindMachine, KindAction:
		return CapEditable
	default:
		return 0
	}
}

// =============================================================================
// Mutation
// =============================================================================

// Rename replaces the display text of the item at addr in place and emits
// a single ItemChanged notification scoped to exactly that address.
//
// States, initial states and the machine reject empty text with
// [ErrEmptyTitle]; action nodes accept it. Every other kind returns
// [ErrNotEditable] and nothing is mutated.
func (m *Model) Rename(addr Address, text string) error {
	if !addr.IsValid() || addr.column != 0 {
		return ErrNotEditable
	}
	item := addr.item
	switch item.kind {
	case KindState, KindInitial, KindMachine:
		if text == "" {
			return ErrEmptyTitle
		}
	case KindAction:
		// Behavior text may be cleared.
	default:
		return ErrNotEditable
	}
	item.title = text
	m.listener.ItemChanged(addr)
	return nil
}

// Move relocates item, with its whole subtree, under target. A nil target
// stands for the states aggregate, making the item top-level. The
// operation is a structural transaction: a remove bracket around the
// unlink from the old parent, then an insert bracket around the link into
// the new parent at row equal to the target's prior child count.
//
// A move onto the item's current parent is a no-op rejected with
// [ErrSameParent] before any notification fires.
func (m *Model) Move(item, target *Item) error {
	if item == nil || (item.kind != KindState && item.kind != KindInitial) {
		return ErrNotMovable
	}
	if target == nil {
		target = m.states
	}
	if target != m.states && target.kind != KindState {
		return ErrInvalidMoveTarget
	}
	oldParent := item.Parent()
	if oldParent == nil {
		return ErrNotMovable
	}
	if oldParent == target {
		return ErrSameParent
	}
	if item.hasDescendant(target) {
		return ErrMoveIntoSubtree
	}

	oldRow := item.Row()
	removeSpan := m.beginRemoveRows(m.ItemToAddress(oldParent), oldRow, oldRow)
	oldParent.RemoveChild(item)
	removeSpan.End()

	newRow := target.ChildCount()
	insertSpan := m.beginInsertRows(m.ItemToAddress(target), newRow, newRow)
	target.AddChild(item)
	insertSpan.End()

	return nil
}
