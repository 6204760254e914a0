package index

// docID is an internal, build-assigned identifier. It is the position of
// the record in the build input and is distinct from the business record id.
type docID uint32

// termPostings maps (field, term) to a sorted list of document ids.
// Written only during commit, read-only once the index is sealed.
type termPostings struct {
	fields map[string]map[string][]docID
}

func newTermPostings() *termPostings {
	return &termPostings{fields: make(map[string]map[string][]docID)}
}

// add appends id to the postings list for (field, term). Callers must add
// documents in ascending id order so lists stay sorted without re-sorting.
func (t *termPostings) add(field, term string, id docID) {
	terms, ok := t.fields[field]
	if !ok {
		terms = make(map[string][]docID)
		t.fields[field] = terms
	}
	terms[term] = append(terms[term], id)
}

// match returns the sorted postings list for (field, term), nil if absent.
func (t *termPostings) match(field, term string) []docID {
	terms, ok := t.fields[field]
	if !ok {
		return nil
	}
	return terms[term]
}

// intersect returns the sorted intersection of two sorted id lists.
func intersect(a, b []docID) []docID {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]docID, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// unionAll returns the sorted union of several sorted id lists.
func unionAll(lists ...[]docID) []docID {
	switch len(lists) {
	case 0:
		return nil
	case 1:
		return lists[0]
	}
	out := lists[0]
	for _, l := range lists[1:] {
		out = union(out, l)
	}
	return out
}

func union(a, b []docID) []docID {
	out := make([]docID, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
