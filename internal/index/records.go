package index

import "github.com/propdex/propdex/internal/domain"

// recordStore maps business record ids to full properties for hydration.
// Populated during commit only; lock-free reads once the index is sealed.
type recordStore struct {
	byID map[int64]domain.Property
}

func newRecordStore(capacity int) *recordStore {
	return &recordStore{byID: make(map[int64]domain.Property, capacity)}
}

func (r *recordStore) put(p domain.Property) {
	r.byID[p.ID] = p
}

// get returns the property for id. Absence is a normal outcome, not an error.
func (r *recordStore) get(id int64) (domain.Property, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *recordStore) len() int {
	return len(r.byID)
}
