package domain

// PageSize is the fixed number of items per listing page, system-wide.
const PageSize = 10

// ListFilter contains the filtering/pagination parameters for content
// listings. Filters compose conjunctively.
type ListFilter struct {
	// Search matches case-insensitively against item titles (substring).
	// nil or empty means no title filter.
	Search *string

	// Topic filters forum posts by exact category. Ignored for notes.
	Topic *Topic

	// Department filters notes by exact category. Ignored for posts.
	Department *Department
}

// HasSearch reports whether a non-empty title filter is set.
func (f ListFilter) HasSearch() bool {
	return f.Search != nil && *f.Search != ""
}

// Page is one bounded slice of a filtered, most-recent-first listing plus its
// pagination metadata.
type Page[T any] struct {
	Items      []T
	TotalCount int
	PageNumber int
	TotalPages int
}

// PageBounds resolves a requested 1-based page number against a total item
// count. Out-of-range requests never error: pages below 1 become 1 and pages
// past the end clamp to the last valid page. An empty collection still has
// one (empty) page. Returns the resolved page, the total page count, and the
// item offset of the resolved page.
func PageBounds(totalCount, requested int) (page, totalPages, offset int) {
	totalPages = (totalCount + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page = requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return page, totalPages, (page - 1) * PageSize
}
