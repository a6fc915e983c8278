package model

import "github.com/google/uuid"

// IDSuffix is appended, repeatedly if necessary, to a requested identifier
// that collides with one already registered.
const IDSuffix = "_"

// Registry maps every addressable item's identifier to the item itself.
// It resolves transition endpoints during import and drag payload entries
// during a drop, and guarantees identifier uniqueness.
//
// A registry's lifecycle is tied 1:1 to the model's tree: both are rebuilt
// atomically on every load and the registry is append-only in between.
type Registry struct {
	items map[string]*Item
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Item)}
}

// GenerateID returns an identifier that is absent from the registry at the
// time of the call. Synthetic identifiers are needed for structurally
// unnamed nodes such as comments and the machine node itself.
func (r *Registry) GenerateID() string {
	for {
		id := "id-" + uuid.NewString()
		if _, taken := r.items[id]; !taken {
			return id
		}
	}
}

// Register inserts item under id and stamps the item with the identifier
// it ended up with. When id is already taken, [IDSuffix] is appended until
// a free identifier is found, so the effective identifier can differ from
// the requested one. Callers should compare the returned value against id
// and surface the rename to the user; a consumer holding the original
// identifier will no longer resolve to this item.
func (r *Registry) Register(id string, item *Item) string {
	effective := id
	for {
		if _, taken := r.items[effective]; !taken {
			break
		}
		effective += IDSuffix
	}
	r.items[effective] = item
	item.id = effective
	return effective
}

// Resolve returns the item registered under id.
func (r *Registry) Resolve(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int { return len(r.items) }

// Clear removes every entry. Called as part of a full model reset, never
// on its own.
func (r *Registry) Clear() {
	r.items = make(map[string]*Item)
}
