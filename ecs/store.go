package ecs

// EntityStore owns the three ordered entity collections. Insertion order is
// spawn order and is preserved by every removal.
type EntityStore struct {
	collections [kindCount][]Entity
	nextID      EntityID
}

// NewEntityStore creates an empty store
func NewEntityStore() *EntityStore {
	return &EntityStore{}
}

// Add appends a new entity to the collection of its kind
func (s *EntityStore) Add(kind Kind, x, y float64, descentSpeed int) Entity {
	s.nextID++
	entity := Entity{
		ID:           s.nextID,
		Kind:         kind,
		X:            x,
		Y:            y,
		DescentSpeed: descentSpeed,
	}
	s.collections[kind] = append(s.collections[kind], entity)
	return entity
}

// Advance applies fn to every entity of a kind, in order
func (s *EntityStore) Advance(kind Kind, fn func(e *Entity)) {
	entities := s.collections[kind]
	for i := range entities {
		fn(&entities[i])
	}
}

// Prune keeps only the entities of a kind for which keep returns true and
// returns how many were removed. The survivors are copied into a fresh slice
// which then replaces the old one, so keep never sees a half-filtered
// collection.
func (s *EntityStore) Prune(kind Kind, keep func(e Entity) bool) int {
	old := s.collections[kind]
	survivors := make([]Entity, 0, len(old))
	for _, e := range old {
		if keep(e) {
			survivors = append(survivors, e)
		}
	}
	s.collections[kind] = survivors
	return len(old) - len(survivors)
}

// RemoveOne removes the entity with the given ID from a kind's collection.
// It reports false if no such entity exists.
func (s *EntityStore) RemoveOne(kind Kind, id EntityID) bool {
	removed := false
	s.Prune(kind, func(e Entity) bool {
		if !removed && e.ID == id {
			removed = true
			return false
		}
		return true
	})
	return removed
}

// View returns a copy of a kind's collection, valid for the current frame
func (s *EntityStore) View(kind Kind) []Entity {
	view := make([]Entity, len(s.collections[kind]))
	copy(view, s.collections[kind])
	return view
}

// Len returns the number of entities of a kind
func (s *EntityStore) Len(kind Kind) int {
	return len(s.collections[kind])
}

// Total returns the number of entities across all kinds
func (s *EntityStore) Total() int {
	total := 0
	for k := range s.collections {
		total += len(s.collections[k])
	}
	return total
}

// Clear empties every collection. IDs keep counting so an entity from before
// the clear can never be mistaken for a new one.
func (s *EntityStore) Clear() {
	for k := range s.collections {
		s.collections[k] = nil
	}
}
