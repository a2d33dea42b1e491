// Package cmdexec is the Command Executor (spec.md §4.F): it parses the
// command-prompt's line buffer into a verb and arguments and dispatches to
// the corresponding rmuxstate.AppState model operation.
package cmdexec

import (
	"strconv"

	"github.com/google/shlex"

	"rmux/internal/rmuxstate"
)

// Execute tokenizes line (the CommandPrompt buffer's contents, without the
// leading ':') the way internal/bridge/exec.go tokenizes a bridge command —
// via github.com/google/shlex, which additionally gives quoted-argument
// support for free — and dispatches the first token as a verb. An empty
// buffer, an unrecognized verb, or a malformed argument are all silent
// no-ops per spec.md §4.F and §7.
func Execute(state *rmuxstate.AppState, line string) error {
	tokens, err := shlex.Split(line)
	if err != nil || len(tokens) == 0 {
		return nil
	}

	verb, args := tokens[0], tokens[1:]
	switch verb {
	case "new-window":
		return state.CreateWindow()
	case "split-window":
		layout := rmuxstate.LayoutStackedVertical
		for _, a := range args {
			if a == "-h" {
				layout = rmuxstate.LayoutStackedHorizontal
			}
		}
		return state.SplitActive(layout)
	case "kill-pane":
		return state.KillActivePane()
	case "next-window":
		state.NextWindow()
	case "previous-window":
		state.PrevWindow()
	case "select-window":
		if n, ok := targetArg(args); ok {
			state.SelectWindow(n - 1)
		}
	}
	return nil
}

// targetArg extracts the N from a "-t N" argument pair.
func targetArg(args []string) (int, bool) {
	for i, a := range args {
		if a == "-t" && i+1 < len(args) {
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}
