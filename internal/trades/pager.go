package trades

// PageSize is the number of trades shown per page
const PageSize = 10

// TotalPages returns ceil(count / size)
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Page returns the slice [(page-1)*size, page*size) of items, clamped to bounds
func Page[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Pager tracks the current page of a filtered list. Requests for pages out of
// range leave it unchanged.
type Pager struct {
	size    int
	current int
	total   int
}

// NewPager returns a pager on page 1 of count items
func NewPager(count, size int) *Pager {
	p := &Pager{size: size}
	p.Reset(count)
	return p
}

// Reset moves back to page 1 for a new item count; called whenever the filter changes
func (p *Pager) Reset(count int) {
	p.current = 1
	p.total = TotalPages(count, p.size)
}

// GoTo moves to page n and reports whether it did
func (p *Pager) GoTo(n int) bool {
	if n < 1 || n > p.total {
		return false
	}
	p.current = n
	return true
}

// Next moves one page forward
func (p *Pager) Next() bool { return p.GoTo(p.current + 1) }

// Prev moves one page back
func (p *Pager) Prev() bool { return p.GoTo(p.current - 1) }

// Current returns the selected page, 1-based
func (p *Pager) Current() int { return p.current }

// Total returns the number of pages, 0 when there are no items
func (p *Pager) Total() int { return p.total }

// Size returns the number of items per page
func (p *Pager) Size() int { return p.size }

// HasPrev reports whether a previous page exists
func (p *Pager) HasPrev() bool { return p.current > 1 }

// HasNext reports whether a next page exists
func (p *Pager) HasNext() bool { return p.current < p.total }

// PageItem is either a page number or an ellipsis in the page control
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageNumbers compresses the page control: up to five pages are listed in
// full; beyond that the first and last pages frame a window of up to three
// pages around current, with ellipses for the gaps.
func PageNumbers(current, total int) []PageItem {
	items := make([]PageItem, 0, 7)
	if total <= 5 {
		for i := 1; i <= total; i++ {
			items = append(items, PageItem{Number: i})
		}
		return items
	}

	items = append(items, PageItem{Number: 1})
	if current > 3 {
		items = append(items, PageItem{Ellipsis: true})
	}
	start := max(2, current-1)
	end := min(total-1, current+1)
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i})
	}
	if current < total-2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	items = append(items, PageItem{Number: total})
	return items
}
