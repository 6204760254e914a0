package domain

import "errors"

var (
	// ErrNotFound signals a missing property.
	ErrNotFound = errors.New("property not found")
	// ErrNotReady signals a query against an index that has not been built.
	ErrNotReady = errors.New("index not ready")
	// ErrAlreadyBuilt signals a second build attempt on a sealed index.
	ErrAlreadyBuilt = errors.New("index already built")
	// ErrBuildFailed signals an aborted index build; no queryable index exists.
	ErrBuildFailed = errors.New("index build failed")
	// ErrCorrupted signals a postings/record store desynchronization.
	// This is an internal invariant violation, never a normal outcome.
	ErrCorrupted = errors.New("index corrupted")
)
