// Package pane implements the Pane entity and its background reader task
// (spec.md §3 "Pane" and §4.C "Pane Reader").
package pane

import (
	"time"

	"github.com/google/uuid"

	"rmux/internal/ptyhost"
	"rmux/internal/vtscreen"
)

// readChunk is the size of one PTY read, matching the "read up to N bytes
// (e.g. 8 KiB)" contract in spec.md §4.C.
const readChunk = 8192

// idleSleep is how long the reader sleeps after a zero-byte read, so it
// never tight-spins on an EOF-like read. Grounded on the reader thread in
// the Rust original (_examples/original_source/src/main.rs), which the
// teacher's own PipeOutput loop omits but spec.md §4.C requires explicitly.
const idleSleep = 5 * time.Millisecond

// Pane is one child shell plus its PTY and emulated screen.
type Pane struct {
	// ID identifies the pane and is exported to its child as the
	// RMUX_PANE_ID environment variable, the same role
	// internal/session/session.go's session IDs play for a session, here
	// scoped down to one pane.
	ID string

	PTY    *ptyhost.Handle
	Screen *vtscreen.Screen

	// LastRows/LastCols record the geometry last applied by the compositor,
	// used to detect drift (spec.md "Pane" invariant).
	LastRows int
	LastCols int
}

// New opens a PTY, spawns command/args on it, and creates the pane's VT
// Screen. It does not start the reader task — call Start for that. The
// Screen exists as soon as New returns, so Start may be called before or
// after the pane is linked into a Window.
func New(command string, args []string) (*Pane, error) {
	id := uuid.NewString()
	h, err := ptyhost.Open(command, args, "RMUX_PANE_ID="+id)
	if err != nil {
		return nil, err
	}
	p := &Pane{
		ID:       id,
		PTY:      h,
		Screen:   vtscreen.New(h.Rows, h.Cols),
		LastRows: h.Rows,
		LastCols: h.Cols,
	}
	return p, nil
}

// Start launches the pane's background reader task and the goroutine that
// reaps the child's exit status (see ptyhost.Handle.Wait). Both are
// detached: the spec's lifetime note (§9) is explicit that readers are
// never joined, they simply stop mattering once the pane is removed.
func (p *Pane) Start() {
	go p.PTY.Wait()
	go p.readLoop()
}

// readLoop is the Pane Reader contract from spec.md §4.C: read, decode under
// the screen lock, release; sleep briefly on a zero-byte read; terminate on
// read error (which happens shortly after the child exits and the PTY
// master becomes unreadable).
func (p *Pane) readLoop() {
	buf := make([]byte, readChunk)
	for {
		n, err := p.PTY.Read(buf)
		if n > 0 {
			p.Screen.Write(buf[:n])
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(idleSleep)
		}
	}
}

// Resize applies a new geometry to both the PTY and the Screen, satisfying
// the invariant that "the VT Screen size equals the last-applied PTY size
// after any resize step completes." It is idempotent: callers are expected
// to call it on every render tick and rely on the LastRows/LastCols check
// to skip the no-op case (see internal/compositor).
func (p *Pane) Resize(rows, cols int) {
	p.PTY.Resize(rows, cols)
	p.Screen.Resize(rows, cols)
	p.LastRows = rows
	p.LastCols = cols
}

// NeedsResize reports whether the pane's last-applied geometry differs from
// the given target, i.e. whether a snap-to-geometry resize is due.
func (p *Pane) NeedsResize(rows, cols int) bool {
	return p.LastRows != rows || p.LastCols != cols
}

// Exited performs the non-blocking child-exit poll spec.md §4.H.1 requires.
func (p *Pane) Exited() bool {
	return p.PTY.TryWait()
}

// Kill force-terminates the pane's child process.
func (p *Pane) Kill() error {
	return p.PTY.Kill()
}

// Close releases the pane's PTY master.
func (p *Pane) Close() error {
	return p.PTY.Close()
}
