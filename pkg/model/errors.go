package model

import "errors"

var (
	// ErrUnresolvedEndpoint is returned by [Model.Load] when an edge
	// references a node identifier that is not in the registry. Edge
	// import is two-phase: every endpoint is resolved before any
	// transition is attached, so a failed load keeps the node tree intact
	// and attaches no transitions at all.
	ErrUnresolvedEndpoint = errors.New("transition endpoint does not resolve to a known item")

	// ErrNotEditable is returned by [Model.Rename] when the address does
	// not denote a renameable item.
	ErrNotEditable = errors.New("item is not editable")

	// ErrEmptyTitle is returned by [Model.Rename] when an empty title is
	// supplied for an item that requires one. Only action items accept
	// empty text.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrSameParent is returned by [Model.Move] when the item already
	// lives under the requested parent. The move is rejected before any
	// structural change, no notifications fire.
	ErrSameParent = errors.New("item is already a child of the target")

	// ErrInvalidMoveTarget is returned by [Model.Move] and
	// [Model.DropPayload] when the destination is neither a state nor the
	// states aggregate.
	ErrInvalidMoveTarget = errors.New("move target must be a state or the states aggregate")

	// ErrNotMovable is returned by [Model.Move] for items that are not
	// drag sources (anything but states and initial states).
	ErrNotMovable = errors.New("only states and initial states can be moved")

	// ErrMoveIntoSubtree is returned by [Model.Move] when the destination
	// lies inside the moved item's own subtree.
	ErrMoveIntoSubtree = errors.New("cannot move an item into its own subtree")

	// ErrUnknownPayloadType is returned by [Model.DropPayload] for data
	// that does not carry the [PayloadType] tag.
	ErrUnknownPayloadType = errors.New("unknown drag payload type")

	// ErrUnknownPayloadID is returned by [Model.DropPayload] when any
	// identifier in the payload fails to resolve. The whole payload is
	// rejected, nothing is moved.
	ErrUnknownPayloadID = errors.New("drag payload references an unknown identifier")
)
