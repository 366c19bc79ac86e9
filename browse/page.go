package browse

// pageCount is the number of windows of size needed to cover n items.
func pageCount(n, size int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/size + 1
}

// Window returns the page-th window of size items: [(page-1)*size, page*size),
// clamped to the slice. Out-of-range or non-positive arguments give an empty
// result. The returned slice has no spare capacity, so appending to it never
// writes into items.
func Window[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 || page > pageCount(len(items), size) {
		return nil
	}
	lo := (page - 1) * size
	hi := lo + min(size, len(items)-lo)
	return items[lo:hi:hi]
}

// Visible returns everything revealed up to and including page:
// [0, page*size), clamped.
func Visible[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	hi := len(items)
	if page < pageCount(hi, size) {
		hi = page * size
	}
	return items[:hi:hi]
}

// Remaining is max(len(items) - page*size, 0).
func Remaining[T any](items []T, page, size int) int {
	if page < 1 || size < 1 {
		return len(items)
	}
	if page >= pageCount(len(items), size) {
		return 0
	}
	return len(items) - page*size
}
