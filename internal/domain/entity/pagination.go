package entity

// DefaultReviewPageSize is the number of reviews per page when none is configured.
const DefaultReviewPageSize = 5

// PageWindow returns the half-open index range [start, end) of a 1-based page
// over total items. Pages below 1 or past the end yield an empty range.
func PageWindow(page, size, total int) (start, end int) {
	if page < 1 || size < 1 || total <= 0 {
		return 0, 0
	}

	// Compare page counts first so (page-1)*size cannot overflow.
	if page-1 >= (total+size-1)/size {
		return 0, 0
	}

	start = (page - 1) * size

	end = min(start+size, total)

	return start, end
}

// Paginate slices items to the given page.
func Paginate[T any](items []T, page, size int) []T {
	start, end := PageWindow(page, size, len(items))

	return append(make([]T, 0, end-start), items[start:end]...)
}
