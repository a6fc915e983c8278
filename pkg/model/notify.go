package model

// Listener receives change notifications from a model. A view layer
// implements it to stay synchronized with the tree; every structural
// mutation is fully bracketed by an about-to/done pair and brackets never
// nest or overlap.
//
// All callbacks fire synchronously on the goroutine performing the
// mutation. [NoopListener] is the default and can be embedded to pick up
// only the events a consumer cares about.
type Listener interface {
	// TreeAboutToBeReset and TreeReset bracket a whole-tree rebuild.
	// Every address and item reference issued before the bracket is
	// invalid once TreeReset fires.
	TreeAboutToBeReset()
	TreeReset()

	// ItemChanged reports an in-place data change scoped to exactly one
	// address, such as a rename.
	ItemChanged(addr Address)

	// RowsAboutToBeRemoved and RowsRemoved bracket the removal of the
	// child rows first through last under parent.
	RowsAboutToBeRemoved(parent Address, first, last int)
	RowsRemoved(parent Address, first, last int)

	// RowsAboutToBeInserted and RowsInserted bracket the insertion of the
	// child rows first through last under parent.
	RowsAboutToBeInserted(parent Address, first, last int)
	RowsInserted(parent Address, first, last int)
}

// NoopListener is a Listener that ignores every event.
type NoopListener struct{}

func (NoopListener) TreeAboutToBeReset()                          {}
func (NoopListener) TreeReset()                                   {}
func (NoopListener) ItemChanged(Address)                          {}
func (NoopListener) RowsAboutToBeRemoved(Address, int, int)       {}
func (NoopListener) RowsRemoved(Address, int, int)                {}
func (NoopListener) RowsAboutToBeInserted(Address, int, int)      {}
func (NoopListener) RowsInserted(Address, int, int)               {}

var _ Listener = NoopListener{}

// span closes a notification bracket. The opening half fires when the
// span is created, the closing half when End is called; pairing the two
// in one value keeps brackets balanced on every code path.
type span struct {
	end func()
}

// End fires the closing notification. Safe to call on the zero value.
func (s span) End() {
	if s.end != nil {
		s.end()
	}
}

func (m *Model) beginReset() span {
	m.listener.TreeAboutToBeReset()
	return span{end: m.listener.TreeReset}
}

func (m *Model) beginRemoveRows(parent Address, first, last int) span {
	m.listener.RowsAboutToBeRemoved(parent, first, last)
	return span{end: func() { m.listener.RowsRemoved(parent, first, last) }}
}

func (m *Model) beginInsertRows(parent Address, first, last int) span {
	m.listener.RowsAboutToBeInserted(parent, first, last)
	return span{end: func() { m.listener.RowsInserted(parent, first, last) }}
}
