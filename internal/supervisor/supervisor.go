// Package supervisor is the Supervisor Loop (spec.md §4.H): the single
// goroutine that owns the terminal driver, polls for input and resize
// events on a bounded timeout, and drives render -> input -> reap each tick.
package supervisor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"rmux/internal/compositor"
	"rmux/internal/inputmode"
	"rmux/internal/keyinput"
	"rmux/internal/rmuxconfig"
	"rmux/internal/rmuxstate"
)

// pollInterval bounds how long one supervisor tick waits for a key event
// before it renders anyway, matching the Rust original's
// event::poll(Duration::from_millis(20)) (spec.md §4.H).
const pollInterval = 20 * time.Millisecond

// resizeDebounce is the minimum gap between two applied host-resize events,
// matching the Rust original's 50ms Instant-based debounce.
const resizeDebounce = 50 * time.Millisecond

// ErrNestedSession is returned when RMUX_ACTIVE is already set in the
// process environment, refusing to run rmux inside itself (spec.md §5, §6).
var ErrNestedSession = errors.New("rmux: nested sessions are not allowed")

// Options configures one supervisor run.
type Options struct {
	ShellCommand string
	ShellArgs    []string
	Stdin        io.Reader
	Stdout       *os.File
}

// Run drives the supervisor loop to completion: it sets up the terminal
// driver, creates the first window, and loops render/poll/reap until every
// window has been reaped or a hard-quit key is seen, then tears the
// terminal driver back down.
func Run(opts Options) error {
	if os.Getenv("RMUX_ACTIVE") == "1" {
		return ErrNestedSession
	}
	os.Setenv("RMUX_ACTIVE", "1")

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	rawState, err := term.MakeRaw(int(stdout.Fd()))
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer term.Restore(int(stdout.Fd()), rawState)

	fmt.Fprint(stdout, "\x1b[?1049h") // enter alternate screen
	defer fmt.Fprint(stdout, "\x1b[?1049l")
	compositor.ApplyCursorStyle(stdout)
	defer fmt.Fprint(stdout, "\x1b[?25h") // ensure cursor visible on exit

	state := rmuxstate.New(opts.ShellCommand, opts.ShellArgs)
	state.PrefixKey = rmuxconfig.Load(rmuxconfig.DefaultPath())
	if err := state.CreateWindow(); err != nil {
		return fmt.Errorf("create initial window: %w", err)
	}
	defer state.KillAll()

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	keys := keyinput.NewReader(stdin)

	resizeCh := make(chan os.Signal, 1)
	signal.Notify(resizeCh, syscall.SIGWINCH)
	defer signal.Stop(resizeCh)

	var lastResize time.Time
	var buf bytes.Buffer

	for {
		rows, cols, err := term.GetSize(int(stdout.Fd()))
		if err != nil {
			rows, cols = 30, 120
		}

		buf.Reset()
		cursorRow, cursorCol := compositor.Frame(&buf, state, rows, cols)
		fmt.Fprintf(&buf, "\x1b[%d;%dH", cursorRow+1, cursorCol+1)
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write to host terminal: %w", err)
		}

		select {
		case key, ok := <-keys.Events:
			if !ok {
				return nil
			}
			if inputmode.HandleKey(state, key).Quit {
				return nil
			}
		case <-resizeCh:
			if time.Since(lastResize) > resizeDebounce {
				p := state.ActiveWindow().ActivePaneRef()
				p.Resize(rows-1, cols)
				lastResize = time.Now()
			}
		case <-time.After(pollInterval):
		}

		if state.Reap() {
			return nil
		}
	}
}
