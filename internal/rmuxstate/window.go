// Package rmuxstate holds the Pane & Window Model (spec.md §3, §4.D): the
// Window and AppState entities and the model operations that mutate them.
// All mutations happen on the supervisor's goroutine — per spec.md §4.D,
// "All model mutations happen on the main task (no model-level locking
// needed)" — so this package takes no locks of its own.
package rmuxstate

import (
	"github.com/google/uuid"

	"rmux/internal/pane"
)

// LayoutKind is a Window's pane arrangement.
type LayoutKind int

const (
	LayoutStackedHorizontal LayoutKind = iota
	LayoutStackedVertical
)

// Window owns an ordered, non-empty sequence of Panes, which one is active,
// and how they're laid out.
type Window struct {
	ID string

	Panes      []*pane.Pane
	ActivePane int
	Layout     LayoutKind
}

// newWindowID generates a fresh, unique window identifier (the same role
// pane.Pane.ID plays for a pane).
func newWindowID() string { return uuid.NewString() }

// ActivePaneRef returns the window's currently active pane.
func (w *Window) ActivePaneRef() *pane.Pane {
	return w.Panes[w.ActivePane]
}

// clampActivePane keeps ActivePane within [0, len(Panes)) after a removal.
func (w *Window) clampActivePane() {
	if w.ActivePane >= len(w.Panes) {
		w.ActivePane = len(w.Panes) - 1
	}
	if w.ActivePane < 0 {
		w.ActivePane = 0
	}
}
