package window

import "errors"

// ErrInvalidGeometry is returned when the item height or viewport height is not positive
var ErrInvalidGeometry = errors.New("window: item height and viewport height must be positive")

// Range is an inclusive range of item indices. An empty range has Start > End.
type Range struct {
	Start int
	End   int
}

// Empty is the range returned when there is nothing to render
var Empty = Range{Start: 0, End: -1}

// IsEmpty reports whether the range holds no items
func (r Range) IsEmpty() bool {
	return r.End < r.Start
}

// Len returns the number of items in the range
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index falls inside the range
func (r Range) Contains(index int) bool {
	return !r.IsEmpty() && index >= r.Start && index <= r.End
}

// Full returns the range covering every item, used when a list is small enough
// to render without virtualization
func Full(itemCount int) Range {
	if itemCount <= 0 {
		return Empty
	}
	return Range{Start: 0, End: itemCount - 1}
}

// ComputeVisibleRange returns the contiguous range of items that intersects the
// viewport, widened by bufferCount items on each side.
func ComputeVisibleRange(scrollOffset, viewportHeight, itemHeight, bufferCount, itemCount int) (Range, error) {
	if itemHeight <= 0 || viewportHeight <= 0 {
		return Empty, ErrInvalidGeometry
	}
	if itemCount <= 0 {
		return Empty, nil
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if bufferCount < 0 {
		bufferCount = 0
	}

	start := scrollOffset/itemHeight - bufferCount
	if start < 0 {
		start = 0
	}
	// ceil(viewportHeight/itemHeight)
	slots := (viewportHeight+itemHeight-1)/itemHeight + 2*bufferCount

	end := start + slots
	if end > itemCount-1 {
		end = itemCount - 1
	}
	// Scrolled past the content: keep start inside the list
	if start > end {
		start = end
	}
	return Range{Start: start, End: end}, nil
}

// ComputeRenderOffset returns the offset at which the first rendered item is placed
func ComputeRenderOffset(start, itemHeight int) int {
	if start < 0 || itemHeight <= 0 {
		return 0
	}
	return start * itemHeight
}

// ScrollEvent describes a scroll notification from the host view
type ScrollEvent struct {
	ScrollTop    int
	ScrollHeight int
	ClientHeight int
}

// Progress returns how far through the content the viewport has scrolled, from 0 to 1
func (e ScrollEvent) Progress() float64 {
	scrollable := e.ScrollHeight - e.ClientHeight
	if scrollable <= 0 {
		return 0
	}
	p := float64(e.ScrollTop) / float64(scrollable)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Window holds the scroll state of one mounted list and the range derived from it.
// Every mutation recomputes the visible range synchronously.
type Window struct {
	itemHeight     int
	bufferCount    int
	scrollOffset   int
	itemCount      int
	viewportHeight int

	visible Range
	err     error
}

// New creates a window for items of itemHeight rows with bufferCount items of margin
func New(itemHeight, bufferCount, viewportHeight, itemCount int) *Window {
	w := &Window{
		itemHeight:     itemHeight,
		bufferCount:    bufferCount,
		viewportHeight: viewportHeight,
		itemCount:      itemCount,
	}
	w.recompute()
	return w
}

func (w *Window) recompute() {
	w.visible, w.err = ComputeVisibleRange(w.scrollOffset, w.viewportHeight, w.itemHeight, w.bufferCount, w.itemCount)
}

// clampOffset keeps the offset between zero and the maximum scroll position
func (w *Window) clampOffset(offset int) int {
	if limit := w.MaxScrollOffset(); offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// OnScroll records a scroll event from the host view
func (w *Window) OnScroll(e ScrollEvent) {
	if e.ClientHeight > 0 && e.ClientHeight != w.viewportHeight {
		w.viewportHeight = e.ClientHeight
	}
	w.scrollOffset = w.clampOffset(e.ScrollTop)
	w.recompute()
}

// ScrollTo moves the viewport to an absolute offset
func (w *Window) ScrollTo(offset int) {
	w.scrollOffset = w.clampOffset(offset)
	w.recompute()
}

// ScrollBy moves the viewport by delta rows
func (w *Window) ScrollBy(delta int) {
	w.ScrollTo(w.scrollOffset + delta)
}

// SetItemCount updates the number of items, e.g. after new data arrives
func (w *Window) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	w.itemCount = n
	w.scrollOffset = w.clampOffset(w.scrollOffset)
	w.recompute()
}

// SetViewportHeight updates the viewport height after a resize
func (w *Window) SetViewportHeight(h int) {
	w.viewportHeight = h
	w.scrollOffset = w.clampOffset(w.scrollOffset)
	w.recompute()
}

// EnsureVisible scrolls the minimum amount needed for item index to be fully inside the viewport
func (w *Window) EnsureVisible(index int) {
	if w.itemHeight <= 0 || w.viewportHeight <= 0 || index < 0 || index >= w.itemCount {
		return
	}
	top := index * w.itemHeight
	bottom := top + w.itemHeight
	switch {
	case top < w.scrollOffset:
		w.ScrollTo(top)
	case bottom > w.scrollOffset+w.viewportHeight:
		w.ScrollTo(bottom - w.viewportHeight)
	}
}

// Visible returns the current visible range including the buffer
func (w *Window) Visible() Range { return w.visible }

// Err returns the geometry error from the last recompute, if any
func (w *Window) Err() error { return w.err }

// RenderOffset returns the offset of the first rendered item
func (w *Window) RenderOffset() int {
	if w.visible.IsEmpty() {
		return 0
	}
	return ComputeRenderOffset(w.visible.Start, w.itemHeight)
}

// ScrollOffset returns the current scroll position in rows
func (w *Window) ScrollOffset() int { return w.scrollOffset }

// ItemHeight returns the fixed row height of one item
func (w *Window) ItemHeight() int { return w.itemHeight }

// ItemCount returns the number of items the window covers
func (w *Window) ItemCount() int { return w.itemCount }

// ViewportHeight returns the current viewport height
func (w *Window) ViewportHeight() int { return w.viewportHeight }

// TotalContentHeight returns the height of the full list
func (w *Window) TotalContentHeight() int {
	if w.itemHeight <= 0 {
		return 0
	}
	return w.itemCount * w.itemHeight
}

// MaxScrollOffset returns the largest offset that still fills the viewport
func (w *Window) MaxScrollOffset() int {
	limit := w.TotalContentHeight() - w.viewportHeight
	if limit < 0 {
		return 0
	}
	return limit
}

// Event returns the scroll state as a ScrollEvent
func (w *Window) Event() ScrollEvent {
	return ScrollEvent{
		ScrollTop:    w.scrollOffset,
		ScrollHeight: w.TotalContentHeight(),
		ClientHeight: w.viewportHeight,
	}
}

// VisibleItems renders the items inside r, calling render once per item with its absolute index
func VisibleItems[T any](items []T, r Range, render func(item T, index int) string) []string {
	if r.IsEmpty() || len(items) == 0 {
		return nil
	}
	end := r.End
	if end > len(items)-1 {
		end = len(items) - 1
	}
	start := r.Start
	if start < 0 {
		start = 0
	}
	if start > end {
		return nil
	}
	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, render(items[i], i))
	}
	return out
}
