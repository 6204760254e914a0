package property

import (
	"context"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/search"
)

// Repository defines the storage contract for property lookups and search.
type Repository interface {
	Get(ctx context.Context, id int64) (domain.Property, error)
	Search(ctx context.Context, params search.Params) (search.Result, error)
}
