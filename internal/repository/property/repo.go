// Package property adapts the in-memory index to the repository contract
// used by the service layer.
package property

import (
	"context"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/search"
	"github.com/propdex/propdex/internal/index"
)

// Repo implements usecase/property.Repository over the sealed index.
type Repo struct {
	ix *index.Index
}

// New creates a property repository.
func New(ix *index.Index) *Repo {
	return &Repo{ix: ix}
}

// Get returns a property by business id. Internal absence becomes
// domain.ErrNotFound for the transport layer to map to 404.
func (r *Repo) Get(_ context.Context, id int64) (domain.Property, error) {
	p, ok := r.ix.Get(id)
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

// Search runs the filter specification against the index.
func (r *Repo) Search(_ context.Context, params search.Params) (search.Result, error) {
	return r.ix.Search(params)
}

// Ready reports whether the underlying index has been built.
func (r *Repo) Ready() bool {
	return r.ix.Ready()
}
