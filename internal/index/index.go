// Package index implements the in-memory property search index: a one-shot
// parallel build that seals immutable postings, numeric, geo and facet
// structures, then serves unlimited concurrent read-only queries.
package index

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/propdex/propdex/internal/domain"
)

// Lifecycle states. The only legal path is empty -> building -> ready.
const (
	stateEmpty int32 = iota
	stateBuilding
	stateReady
)

// Index is the sealed search index over a property catalog.
//
// Build must be called exactly once before any query. After Build returns,
// every structure is read-only and queries need no locking.
type Index struct {
	mu            sync.Mutex // guards state transitions
	state         atomic.Int32
	encodeWorkers int

	// Sealed at commit, read-only afterwards.
	terms     *termPostings
	numerics  *numericIndex
	geo       *geoIndex
	facets    *facetStore
	records   *recordStore
	recordIDs []int64 // docID -> business record id
}

// Option configures an Index.
type Option func(*Index)

// WithEncodeWorkers bounds the parallel encode fan-out during Build.
// Defaults to GOMAXPROCS.
func WithEncodeWorkers(n int) Option {
	return func(ix *Index) {
		if n > 0 {
			ix.encodeWorkers = n
		}
	}
}

// New creates an empty, unbuilt index.
func New(opts ...Option) *Index {
	ix := &Index{encodeWorkers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Ready reports whether the index has been built and sealed.
func (ix *Index) Ready() bool {
	return ix.state.Load() == stateReady
}

// Len returns the number of indexed records, 0 before Build.
func (ix *Index) Len() int {
	if !ix.Ready() {
		return 0
	}
	return ix.records.len()
}

// Build encodes all records in parallel, then commits them into the sealed
// structures in a single critical section. All-or-nothing: any failure
// leaves no readable index. A second Build returns ErrAlreadyBuilt.
func (ix *Index) Build(ctx context.Context, records []domain.Property) error {
	ix.mu.Lock()
	if ix.state.Load() != stateEmpty {
		ix.mu.Unlock()
		return domain.ErrAlreadyBuilt
	}
	ix.state.Store(stateBuilding)
	ix.mu.Unlock()

	if err := ix.build(ctx, records); err != nil {
		ix.mu.Lock()
		ix.state.Store(stateEmpty)
		ix.mu.Unlock()
		return fmt.Errorf("%w: %w", domain.ErrBuildFailed, err)
	}

	ix.state.Store(stateReady)
	return nil
}

func (ix *Index) build(ctx context.Context, records []domain.Property) error {
	// Fan out pure per-record encodes. Each worker writes only its own slot,
	// so the slice needs no locking.
	docs := make([]encodedDoc, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.encodeWorkers)
	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs[i] = encodeDocument(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	return ix.commit(docs)
}

// commit folds the encoded documents into the sealed structures.
// Single-threaded by construction: it runs only after every encode has
// completed. Documents are committed in input order, so doc ids ascend and
// postings lists come out sorted.
func (ix *Index) commit(docs []encodedDoc) error {
	terms := newTermPostings()
	numerics := newNumericIndex()
	geoIdx := newGeoIndex()
	facets := newFacetStore(len(docs))
	recs := newRecordStore(len(docs))
	recordIDs := make([]int64, len(docs))

	for i, doc := range docs {
		id := docID(i)

		if _, dup := recs.get(doc.record.ID); dup {
			return fmt.Errorf("duplicate record id %d", doc.record.ID)
		}
		recs.put(doc.record)
		recordIDs[i] = doc.record.ID

		for field, fieldTerms := range doc.terms {
			for _, term := range fieldTerms {
				terms.add(field, term, id)
			}
		}
		for field, value := range doc.numerics {
			numerics.add(field, value, id)
		}
		if doc.geo != nil {
			geoIdx.add(id, *doc.geo)
		}
		facets.add(doc.labels)
	}

	numerics.seal()

	ix.terms = terms
	ix.numerics = numerics
	ix.geo = geoIdx
	ix.facets = facets
	ix.records = recs
	ix.recordIDs = recordIDs
	return nil
}

// Get returns the property with the given business id. Absence is a normal
// outcome. Returns false before the index is built.
func (ix *Index) Get(id int64) (domain.Property, bool) {
	if !ix.Ready() {
		return domain.Property{}, false
	}
	return ix.records.get(id)
}
