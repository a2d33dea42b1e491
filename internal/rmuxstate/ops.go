package rmuxstate

import "rmux/internal/pane"

// CreateWindow opens a PTY, spawns the configured shell, wraps it in a new
// Pane, and appends a new single-pane Window, making it active (spec.md
// §4.D "create_window").
func (a *AppState) CreateWindow() error {
	p, err := pane.New(a.ShellCommand, a.ShellArgs)
	if err != nil {
		return err
	}
	p.Start()
	a.Windows = append(a.Windows, &Window{
		ID:         newWindowID(),
		Panes:      []*pane.Pane{p},
		ActivePane: 0,
		Layout:     LayoutStackedHorizontal,
	})
	a.ActiveIdx = len(a.Windows) - 1
	return nil
}

// SplitActive opens a new PTY/Pane, appends it to the active window, makes
// it the window's active pane, and sets the window's layout kind to the
// requested value (spec.md §4.D "split_active"). Per §9's open question,
// this overwrites the window's layout kind even if it already held panes
// from a different split direction — that is the spec'd behavior, not a
// bug to fix.
func (a *AppState) SplitActive(layout LayoutKind) error {
	p, err := pane.New(a.ShellCommand, a.ShellArgs)
	if err != nil {
		return err
	}
	p.Start()
	win := a.ActiveWindow()
	win.Panes = append(win.Panes, p)
	win.ActivePane = len(win.Panes) - 1
	win.Layout = layout
	return nil
}

// KillActivePane removes the active window's active pane and kills its
// child, unless it is the window's only pane — in which case this is a
// no-op (spec.md §4.D "kill_active_pane"; §9's open question: single-pane
// windows are never removed this way, only by reaping on child exit).
func (a *AppState) KillActivePane() error {
	win := a.ActiveWindow()
	if len(win.Panes) <= 1 {
		return nil
	}
	idx := win.ActivePane
	p := win.Panes[idx]
	win.Panes = append(win.Panes[:idx], win.Panes[idx+1:]...)
	win.clampActivePane()
	return p.Kill()
}

// NextWindow advances ActiveIdx to the next window, wrapping around.
func (a *AppState) NextWindow() {
	if len(a.Windows) == 0 {
		return
	}
	a.ActiveIdx = (a.ActiveIdx + 1) % len(a.Windows)
}

// PrevWindow moves ActiveIdx to the previous window, wrapping around.
func (a *AppState) PrevWindow() {
	if len(a.Windows) == 0 {
		return
	}
	a.ActiveIdx = (a.ActiveIdx + len(a.Windows) - 1) % len(a.Windows)
}

// SelectWindow sets ActiveIdx to idx if it is in range, and is a silent
// no-op otherwise (spec.md §4.D "select_window(n)", §7's
// out-of-range-select-window no-op).
func (a *AppState) SelectWindow(idx int) {
	if idx < 0 || idx >= len(a.Windows) {
		return
	}
	a.ActiveIdx = idx
}

// Reap walks all windows and panes performing the non-blocking child-exit
// poll from spec.md §4.H.1: exited panes are removed (clamping the window's
// active index), windows left empty are removed in turn (clamping
// ActiveIdx), and the return value reports whether no windows remain.
func (a *AppState) Reap() (empty bool) {
	i := 0
	for i < len(a.Windows) {
		win := a.Windows[i]
		j := 0
		for j < len(win.Panes) {
			if win.Panes[j].Exited() {
				_ = win.Panes[j].Close()
				win.Panes = append(win.Panes[:j], win.Panes[j+1:]...)
				win.clampActivePane()
				continue
			}
			j++
		}
		if len(win.Panes) == 0 {
			a.Windows = append(a.Windows[:i], a.Windows[i+1:]...)
			a.clampActiveIdx()
			continue
		}
		i++
	}
	return a.Empty()
}

// KillAll force-terminates every pane's child process. Called on shutdown.
func (a *AppState) KillAll() {
	for _, win := range a.Windows {
		for _, p := range win.Panes {
			_ = p.Kill()
		}
	}
}
