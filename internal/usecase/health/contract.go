package health

// IndexChecker reports whether the search index is built and queryable.
type IndexChecker interface {
	Ready() bool
}
