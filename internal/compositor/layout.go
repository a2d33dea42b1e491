// Package compositor is the Compositor (spec.md §4.G): it computes each
// pane's on-screen rectangle, renders pane borders/titles/content, the
// status bar, and the CommandPrompt overlay, and positions the host cursor.
package compositor

import "rmux/internal/rmuxstate"

// Rect is a screen rectangle in host-terminal cell coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Inner returns the rectangle remaining after a one-cell border on all
// sides, floored at a 1x1 rectangle so a tiny pane never reports a negative
// content area.
func (r Rect) Inner() Rect {
	x, y, w, h := r.X+1, r.Y+1, r.Width-2, r.Height-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// SplitHorizontal divides r into n equal-ish columns left to right,
// mirroring the Rust original's
// Constraint::Percentage(100/pane_count) split (original_source/src/main.rs):
// each share gets width/n, and the remainder (rounding slack) is absorbed
// into the last share so the columns always sum to exactly r.Width.
func SplitHorizontal(r Rect, n int) []Rect {
	if n < 1 {
		n = 1
	}
	share := r.Width / n
	out := make([]Rect, n)
	x := r.X
	for i := 0; i < n; i++ {
		w := share
		if i == n-1 {
			w = r.Width - share*(n-1)
		}
		out[i] = Rect{X: x, Y: r.Y, Width: w, Height: r.Height}
		x += w
	}
	return out
}

// SplitVertical divides r into n equal-ish rows top to bottom, the vertical
// analogue of SplitHorizontal.
func SplitVertical(r Rect, n int) []Rect {
	if n < 1 {
		n = 1
	}
	share := r.Height / n
	out := make([]Rect, n)
	y := r.Y
	for i := 0; i < n; i++ {
		h := share
		if i == n-1 {
			h = r.Height - share*(n-1)
		}
		out[i] = Rect{X: r.X, Y: y, Width: r.Width, Height: h}
		y += h
	}
	return out
}

// PaneRects lays out win's panes within content (the screen area above the
// status bar), per win's LayoutKind.
func PaneRects(content Rect, win *rmuxstate.Window) []Rect {
	n := len(win.Panes)
	if win.Layout == rmuxstate.LayoutStackedVertical {
		return SplitVertical(content, n)
	}
	return SplitHorizontal(content, n)
}

// CenteredOverlay computes the CommandPrompt overlay's rectangle: percentX
// percent of full's width, a fixed height, centered both ways — the Go
// analogue of the Rust original's centered_rect(80, 3, area).
func CenteredOverlay(full Rect, percentX, height int) Rect {
	midY := full.Y + (full.Height-height)/2
	width := (full.Width * percentX) / 100
	x := full.X + (full.Width-width)/2
	return Rect{X: x, Y: midY, Width: width, Height: height}
}
