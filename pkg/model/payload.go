package model

import (
	"encoding/json"
	"fmt"
)

// PayloadType is the well-known tag identifying a drag payload produced
// by [Model.DragPayload].
const PayloadType = "application/x-smtree-state-ids"

// payload is the wire form of a drag selection: an ordered identifier
// list under the type tag.
type payload struct {
	Type string   `json:"type"`
	IDs  []string `json:"ids"`
}

// DragPayload serializes a selection of addresses for a drag operation.
// The selection is filtered to drag sources (states and initial states);
// every other address, and any non-zero column, is silently dropped. Each
// surviving address contributes its item's identifier, in selection order.
func (m *Model) DragPayload(addrs []Address) ([]byte, error) {
	ids := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.column != 0 || !a.IsValid() {
			continue
		}
		if !m.Capabilities(a).Has(CapDraggable) {
			continue
		}
		ids = append(ids, a.item.ID())
	}
	data, err := json.Marshal(payload{Type: PayloadType, IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// DropPayload applies a drag payload to the drop target at addr. Every
// identifier is resolved through the registry before anything moves; one
// unresolvable entry rejects the whole payload with [ErrUnknownPayloadID]
// and the tree is untouched. Resolved items are then moved to the target
// in payload order, skipping items already parented there.
func (m *Model) DropPayload(data []byte, target Address) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if p.Type != PayloadType {
		return fmt.Errorf("%q: %w", p.Type, ErrUnknownPayloadType)
	}

	targetItem := m.AddressToItem(target)
	if !m.Capabilities(target).Has(CapDroppable) {
		return ErrInvalidMoveTarget
	}

	items := make([]*Item, len(p.IDs))
	for i, id := range p.IDs {
		item, ok := m.registry.Resolve(id)
		if !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownPayloadID)
		}
		items[i] = item
	}

	for _, item := range items {
		if item.Parent() == targetItem {
			continue
		}
		if err := m.Move(item, targetItem); err != nil {
			return err
		}
	}
	return nil
}
