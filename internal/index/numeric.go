package index

import (
	"slices"
	"sort"
)

// numericEntry is one (value, document) point in a numeric field.
type numericEntry struct {
	value float64
	id    docID
}

// numericIndex holds per-field numeric points sorted by (value, id) so that
// range queries reduce to two binary searches.
// Written only during commit, read-only once the index is sealed.
type numericIndex struct {
	fields map[string][]numericEntry
}

func newNumericIndex() *numericIndex {
	return &numericIndex{fields: make(map[string][]numericEntry)}
}

func (n *numericIndex) add(field string, value float64, id docID) {
	n.fields[field] = append(n.fields[field], numericEntry{value: value, id: id})
}

// seal sorts every field's entries. Must be called exactly once, after the
// last add and before the first rangeMatch.
func (n *numericIndex) seal() {
	for _, entries := range n.fields {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].value != entries[j].value {
				return entries[i].value < entries[j].value
			}
			return entries[i].id < entries[j].id
		})
	}
}

// rangeMatch returns the sorted ids of documents whose value lies in the
// inclusive range [minVal, maxVal]. An inverted range yields an empty set,
// not an error.
func (n *numericIndex) rangeMatch(field string, minVal, maxVal float64) []docID {
	if minVal > maxVal {
		return nil
	}
	entries, ok := n.fields[field]
	if !ok {
		return nil
	}

	lo := sort.Search(len(entries), func(i int) bool { return entries[i].value >= minVal })
	hi := sort.Search(len(entries), func(i int) bool { return entries[i].value > maxVal })
	if lo >= hi {
		return nil
	}

	ids := make([]docID, 0, hi-lo)
	for _, e := range entries[lo:hi] {
		ids = append(ids, e.id)
	}
	slices.Sort(ids)
	return ids
}
