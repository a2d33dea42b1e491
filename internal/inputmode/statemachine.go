// Package inputmode is the Input State Machine (spec.md §4.E): it
// demultiplexes decoded key events between "forward bytes to the active
// pane" and "interpret as a multiplexer command," driving the Mode field on
// rmuxstate.AppState through Passthrough / PrefixArmed / CommandPrompt.
package inputmode

import (
	"time"

	"rmux/internal/cmdexec"
	"rmux/internal/keyinput"
	"rmux/internal/rmuxstate"
)

// Outcome reports what HandleKey did, so the Supervisor Loop knows whether
// to set its quit flag.
type Outcome struct {
	Quit bool
}

// HandleKey runs one key event through the state machine. It implements the
// transition table in spec.md §4.E, including the global hard-quit
// override (control+Q) that applies regardless of Mode.
func HandleKey(state *rmuxstate.AppState, key keyinput.Key) Outcome {
	if key.IsCtrl() && key.Rune == 'q' {
		return Outcome{Quit: true}
	}

	switch state.Mode {
	case rmuxstate.ModePassthrough:
		handlePassthrough(state, key)
	case rmuxstate.ModePrefixArmed:
		handlePrefixArmed(state, key)
	case rmuxstate.ModeCommandPrompt:
		handleCommandPrompt(state, key)
	}
	return Outcome{}
}

func isPrefixChord(state *rmuxstate.AppState, key keyinput.Key) bool {
	if key.Code != keyinput.CodeRune {
		return false
	}
	// Accept the configured prefix chord, and also the raw 0x02 byte
	// (control+B sent as a literal STX), per spec.md §4.E.
	if key.Rune == 0x02 {
		return true
	}
	want := state.PrefixKey
	return key.Rune == want.Rune && key.IsCtrl() == want.Ctrl
}

func handlePassthrough(state *rmuxstate.AppState, key keyinput.Key) {
	if isPrefixChord(state, key) {
		state.Mode = rmuxstate.ModePrefixArmed
		state.ArmedAt = time.Now()
		return
	}
	forwardToActivePane(state, key)
}

func handlePrefixArmed(state *rmuxstate.AppState, key keyinput.Key) {
	// Every path out of PrefixArmed returns to Passthrough after exactly
	// one key event, per spec.md §8's invariant; the unrecognized-key
	// branch swallows the key either way (spec.md §9: the escape-timeout
	// field is kept but currently inert).
	defer func() {
		if state.Mode == rmuxstate.ModePrefixArmed {
			state.Mode = rmuxstate.ModePassthrough
		}
	}()

	if d, ok := key.IsDigit(); ok {
		if d >= 1 && d <= 9 && d <= len(state.Windows) {
			state.SelectWindow(d - 1)
		}
		return
	}

	if key.Code != keyinput.CodeRune {
		return
	}

	switch key.Rune {
	case 'c':
		_ = state.CreateWindow()
	case 'n':
		state.NextWindow()
	case 'p':
		state.PrevWindow()
	case '%':
		_ = state.SplitActive(rmuxstate.LayoutStackedVertical)
	case '"':
		_ = state.SplitActive(rmuxstate.LayoutStackedHorizontal)
	case 'x':
		_ = state.KillActivePane()
	case ':':
		state.Mode = rmuxstate.ModeCommandPrompt
		state.PromptBuffer = state.PromptBuffer[:0]
	}
}

func handleCommandPrompt(state *rmuxstate.AppState, key keyinput.Key) {
	switch key.Code {
	case keyinput.CodeEscape:
		state.Mode = rmuxstate.ModePassthrough
		state.PromptBuffer = state.PromptBuffer[:0]
	case keyinput.CodeEnter:
		line := string(state.PromptBuffer)
		state.Mode = rmuxstate.ModePassthrough
		state.PromptBuffer = state.PromptBuffer[:0]
		_ = cmdexec.Execute(state, line)
	case keyinput.CodeBackspace:
		if n := len(state.PromptBuffer); n > 0 {
			state.PromptBuffer = state.PromptBuffer[:n-1]
		}
	case keyinput.CodeRune:
		if !key.IsCtrl() {
			state.PromptBuffer = append(state.PromptBuffer, []byte(string(key.Rune))...)
		}
	}
}

// forwardToActivePane writes the bytes spec.md §4.E.1 maps a host key to,
// onto the active pane's PTY master. Unmapped keys are dropped.
func forwardToActivePane(state *rmuxstate.AppState, key keyinput.Key) {
	p := state.ActiveWindow().ActivePaneRef()
	var out []byte
	switch key.Code {
	case keyinput.CodeRune:
		if key.IsCtrl() {
			return
		}
		out = []byte(string(key.Rune))
	case keyinput.CodeEnter:
		out = []byte{'\r'}
	case keyinput.CodeTab:
		out = []byte{'\t'}
	case keyinput.CodeBackspace:
		out = []byte{0x08}
	case keyinput.CodeEscape:
		out = []byte{0x1B}
	case keyinput.CodeArrowLeft:
		out = []byte{0x1B, '[', 'D'}
	case keyinput.CodeArrowRight:
		out = []byte{0x1B, '[', 'C'}
	case keyinput.CodeArrowUp:
		out = []byte{0x1B, '[', 'A'}
	case keyinput.CodeArrowDown:
		out = []byte{0x1B, '[', 'B'}
	default:
		return
	}
	_, _ = p.PTY.Write(out)
}
