// Package ptyhost allocates PTY pairs and spawns child shells on them.
//
// It is the PTY Host component: the only part of rmux that talks to the
// operating system's pseudo-terminal facility. Panes own one Handle each;
// the handle exposes the master side for reads, writes, and resizes, and the
// child process for exit polling and killing.
package ptyhost

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// ptySysProcAttr makes the PTY slave the child's controlling terminal, the
// same SysProcAttr creack/pty's own StartWithSize sets internally.
func ptySysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true, Setctty: true}
}

// initialRows and initialCols are the placeholder size a Handle is opened
// with. The compositor corrects this to the real pane rectangle on the
// first render tick, once layout has been computed.
const (
	initialRows = 30
	initialCols = 120
)

// ErrPtyAllocationFailed wraps an OS-level failure to allocate a PTY pair.
type ErrPtyAllocationFailed struct{ Err error }

func (e *ErrPtyAllocationFailed) Error() string { return fmt.Sprintf("pty allocation failed: %v", e.Err) }
func (e *ErrPtyAllocationFailed) Unwrap() error  { return e.Err }

// ErrSpawnFailed wraps an OS-level failure to start the child process.
type ErrSpawnFailed struct{ Err error }

func (e *ErrSpawnFailed) Error() string { return fmt.Sprintf("spawn failed: %v", e.Err) }
func (e *ErrSpawnFailed) Unwrap() error  { return e.Err }

// Handle owns one PTY master and the child process attached to its slave.
type Handle struct {
	Master *os.File
	Cmd    *exec.Cmd
	Rows   int
	Cols   int
}

// Open allocates a PTY pair and spawns command/args on the slave side. The
// master is held open and returned on Handle; the slave is closed once the
// child has it duplicated onto its stdio. extraEnv entries ("KEY=value")
// are appended to the child's inherited environment.
//
// Allocating the PTY pair and starting the child are distinct failure
// stages (spec.md §7's PtyAllocationFailed vs SpawnFailed kinds): opening
// the pair can fail on its own (no free PTYs, sandboxing denies /dev/ptmx)
// before the child is ever started.
func Open(command string, args []string, extraEnv ...string) (*Handle, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, &ErrPtyAllocationFailed{Err: err}
	}
	defer slave.Close()

	pty.Setsize(master, &pty.Winsize{Rows: uint16(initialRows), Cols: uint16(initialCols)})

	cmd := exec.Command(command, args...)
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = ptySysProcAttr()
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	if err := cmd.Start(); err != nil {
		master.Close()
		return nil, &ErrSpawnFailed{Err: err}
	}
	return &Handle{Master: master, Cmd: cmd, Rows: initialRows, Cols: initialCols}, nil
}

// Resize updates the PTY's window size. It is a no-op in terms of PTY
// allocation — it never fails in a way the caller needs to distinguish from
// a spawn/open failure, matching the teacher's treatment of pty.Setsize as
// fire-and-forget.
func (h *Handle) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	h.Rows = rows
	h.Cols = cols
	pty.Setsize(h.Master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Write sends bytes to the child's stdin via the PTY master.
func (h *Handle) Write(p []byte) (int, error) {
	return h.Master.Write(p)
}

// Read reads child output from the PTY master.
func (h *Handle) Read(p []byte) (int, error) {
	return h.Master.Read(p)
}

// Close releases the PTY master.
func (h *Handle) Close() error {
	return h.Master.Close()
}

// TryWait performs a non-blocking poll for child exit. It reports whether
// the child has exited, without blocking the caller.
func (h *Handle) TryWait() (exited bool) {
	if h.Cmd.Process == nil {
		return false
	}
	// cmd.ProcessState is set once Wait (run in a detached goroutine by
	// Pane.Start) has reaped the child; until then the child counts as
	// running.
	if h.Cmd.ProcessState != nil {
		return true
	}
	return false
}

// Kill force-terminates the child process.
func (h *Handle) Kill() error {
	if h.Cmd.Process == nil {
		return nil
	}
	return h.Cmd.Process.Kill()
}

// Wait blocks until the child exits and records its ProcessState. It is
// meant to be run in its own goroutine per pane so TryWait can observe
// completion without blocking the supervisor loop.
func (h *Handle) Wait() {
	_ = h.Cmd.Wait()
}
