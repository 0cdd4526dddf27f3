package filters

import "math"

// PageSizeOptions are the page sizes offered by the page size selector
var PageSizeOptions = []int{10, 20, 50, 100}

// MaxVisiblePages is the default width of the page number window
const MaxVisiblePages = 5

// PaginationResult is the arithmetic for one page of a list
type PaginationResult struct {
	TotalItems int
	TotalPages int
	Page       int
	PageSize   int
	SliceStart int
	SliceEnd   int // exclusive, may exceed TotalItems; see Bounds
}

// Paginate computes page arithmetic. It does not correct a page beyond the
// last one; such a page simply has an empty slice.
func Paginate(totalItems, page, pageSize int) PaginationResult {
	if totalItems < 0 {
		totalItems = 0
	}
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		totalPages++
	}
	// Saturate instead of wrapping on huge pages
	start := math.MaxInt
	if page-1 <= math.MaxInt/pageSize {
		start = (page - 1) * pageSize
	}
	end := math.MaxInt
	if start <= math.MaxInt-pageSize {
		end = start + pageSize
	}
	return PaginationResult{
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		SliceStart: start,
		SliceEnd:   end,
	}
}

// Bounds returns the slice bounds clamped to the number of items
func (p PaginationResult) Bounds() (start, end int) {
	start, end = max(p.SliceStart, 0), max(p.SliceEnd, 0)
	if start > p.TotalItems {
		start = p.TotalItems
	}
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return start, end
}

// Len returns the number of items on the page
func (p PaginationResult) Len() int {
	start, end := p.Bounds()
	return end - start
}

// HasPrev reports whether a previous page exists
func (p PaginationResult) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists
func (p PaginationResult) HasNext() bool {
	return p.Page < p.TotalPages
}

// OutOfRange reports whether the page lies beyond the last page of a non-empty list
func (p PaginationResult) OutOfRange() bool {
	return p.TotalPages > 0 && p.Page > p.TotalPages
}

// ItemRange returns the 1-based positions of the first and last item on the
// page, or 0, 0 when the page is empty
func (p PaginationResult) ItemRange() (from, to int) {
	start, end := p.Bounds()
	if start >= end {
		return 0, 0
	}
	return start + 1, end
}

// Slice returns the items on the page. It never includes indices at or past len(items).
func Slice[T any](items []T, p PaginationResult) []T {
	start, end := p.Bounds()
	if end > len(items) {
		end = len(items)
	}
	if start >= end {
		return nil
	}
	return items[start:end]
}

// PageNumbers returns a window of at most maxVisible page numbers around current
func PageNumbers(current, totalPages, maxVisible int) []int {
	if totalPages <= 0 {
		return nil
	}
	if maxVisible <= 0 {
		maxVisible = MaxVisiblePages
	}
	if totalPages <= maxVisible {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := current - maxVisible/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end >= totalPages {
		end = totalPages
		start = totalPages - maxVisible + 1
	}
	pages := make([]int, 0, maxVisible)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// NextPageSize returns the option after current, wrapping around
func NextPageSize(current int, options []int) int {
	if len(options) == 0 {
		return current
	}
	for i, size := range options {
		if size == current {
			return options[(i+1)%len(options)]
		}
	}
	for _, size := range options {
		if size > current {
			return size
		}
	}
	return options[0]
}
