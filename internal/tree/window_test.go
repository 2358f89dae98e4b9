package tree

import "testing"

func TestNewWindowSpansHeightFromTop(t *testing.T) {
	w := NewWindow(5)
	if w.Top() != 0 || w.Bottom() != 5 {
		t.Fatalf("expected range [0,5], got [%d,%d]", w.Top(), w.Bottom())
	}
	if w.Height() != 5 {
		t.Fatalf("expected height 5, got %d", w.Height())
	}
}

func TestFixViewScrollsDownKeepingHeight(t *testing.T) {
	w := NewWindow(5)
	w.FixView(7)
	if w.Top() != 2 || w.Bottom() != 7 {
		t.Fatalf("expected range [2,7], got [%d,%d]", w.Top(), w.Bottom())
	}
	if !w.Contains(7) {
		t.Fatalf("expected window to contain 7")
	}
	if w.Height() != 5 {
		t.Fatalf("expected height preserved at 5, got %d", w.Height())
	}
}

func TestFixViewScrollsBackUp(t *testing.T) {
	w := NewWindow(5)
	w.FixView(9)
	w.FixView(1)
	if w.Top() != 1 || w.Bottom() != 6 {
		t.Fatalf("expected range [1,6], got [%d,%d]", w.Top(), w.Bottom())
	}
}

func TestFixViewInsideRangeIsStable(t *testing.T) {
	w := NewWindow(5)
	w.FixView(7)
	top, bottom := w.Top(), w.Bottom()
	w.FixView(4)
	if w.Top() != top || w.Bottom() != bottom {
		t.Fatalf("expected range unchanged [%d,%d], got [%d,%d]", top, bottom, w.Top(), w.Bottom())
	}
}

func TestFixViewRecoversFromNegativeTop(t *testing.T) {
	w := NewWindow(5)
	w.FixView(-1)
	w.FixView(0)
	if w.Top() != 0 || w.Bottom() != 5 {
		t.Fatalf("expected range [0,5], got [%d,%d]", w.Top(), w.Bottom())
	}
}

func TestResizeGrowExtendsTopEdge(t *testing.T) {
	w := NewWindow(5)
	w.FixView(7)
	w.Resize(8, 4)
	if w.Height() != 8 {
		t.Fatalf("expected height 8, got %d", w.Height())
	}
	if !w.Contains(4) {
		t.Fatalf("expected window to contain 4, got [%d,%d]", w.Top(), w.Bottom())
	}
	if w.Top() < 0 {
		t.Fatalf("expected non-negative top, got %d", w.Top())
	}
}

func TestResizeShrinkKeepsSelectionVisible(t *testing.T) {
	w := NewWindow(8)
	w.FixView(7)
	w.Resize(3, 7)
	if w.Height() != 3 {
		t.Fatalf("expected height 3, got %d", w.Height())
	}
	if !w.Contains(7) {
		t.Fatalf("expected window to contain 7, got [%d,%d]", w.Top(), w.Bottom())
	}
}

func TestResizeShrinkAnchorsBottomAtSelection(t *testing.T) {
	w := NewWindow(8)
	w.Resize(3, 7)
	if w.Bottom() != 8 || w.Top() != 5 {
		t.Fatalf("expected range [5,8], got [%d,%d]", w.Top(), w.Bottom())
	}
}

func TestResizeRepeatedRoundTrip(t *testing.T) {
	w := NewWindow(6)
	current := 10
	w.FixView(current)
	for _, h := range []int{3, 9, 1, 6} {
		w.Resize(h, current)
		if w.Height() != h {
			t.Fatalf("expected height %d, got %d", h, w.Height())
		}
		if !w.Contains(current) {
			t.Fatalf("expected window to contain %d after resize to %d, got [%d,%d]", current, h, w.Top(), w.Bottom())
		}
	}
}
