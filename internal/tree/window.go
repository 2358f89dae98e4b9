package tree

// Window tracks the visible index range [a, b] over the flattened row list.
// Scrolling slides both bounds by the same delta so the height is preserved;
// only Resize changes the height.
type Window struct {
	a, b int
}

// NewWindow returns a window anchored at the top with the given height.
func NewWindow(height int) *Window {
	if height < 0 {
		height = 0
	}
	return &Window{a: 0, b: height}
}

// Top returns the first visible index.
func (w *Window) Top() int { return w.a }

// Bottom returns the last visible index.
func (w *Window) Bottom() int { return w.b }

// Height returns the number of rows between the bounds.
func (w *Window) Height() int { return w.b - w.a }

// Contains reports whether index i is inside the visible range.
func (w *Window) Contains(i int) bool { return w.a <= i && i <= w.b }

func (w *Window) shift(delta int) {
	w.a += delta
	w.b += delta
}

// FixView slides the range so that current stays inside it.
func (w *Window) FixView(current int) {
	if w.a < 0 {
		w.shift(-w.a)
	}
	if current <= w.a {
		w.shift(current - w.a)
	}
	if w.b <= current {
		w.shift(current - w.b)
	}
}

// Resize adjusts the range to a new height. Growth extends the top edge in
// place; shrinking gives up rows at the top, re-anchoring the bottom at the
// selection so it never scrolls out of sight.
func (w *Window) Resize(height, current int) {
	if height < 0 {
		height = 0
	}
	diff := w.Height() - height
	if diff <= 0 {
		w.a += diff
	} else {
		w.b -= diff
		bottom := w.b
		if current+1 > bottom {
			bottom = current + 1
		}
		w.a = bottom - height
		w.b = bottom
	}
	w.FixView(current)
}
