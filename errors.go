package propdex

import "github.com/propdex/propdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound    = domain.ErrNotFound
	ErrNotReady    = domain.ErrNotReady
	ErrBuildFailed = domain.ErrBuildFailed
	ErrCorrupted   = domain.ErrCorrupted
)
