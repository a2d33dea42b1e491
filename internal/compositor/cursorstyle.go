package compositor

import (
	"fmt"
	"io"
	"os"
)

// cursorStyleCode maps RMUX_CURSOR_STYLE/RMUX_CURSOR_BLINK to the DECSCUSR
// parameter, matching apply_cursor_style in the Rust original
// (_examples/original_source/src/main.rs).
func cursorStyleCode() int {
	style := os.Getenv("RMUX_CURSOR_STYLE")
	if style == "" {
		style = "bar"
	}
	blink := os.Getenv("RMUX_CURSOR_BLINK") != "0"

	switch style {
	case "block":
		if blink {
			return 1
		}
		return 2
	case "underline":
		if blink {
			return 3
		}
		return 4
	default: // "bar", "beam", and anything unrecognized
		if blink {
			return 5
		}
		return 6
	}
}

// ApplyCursorStyle writes the DECSCUSR escape sequence selecting the
// host cursor's shape and blink state for the session, per spec.md's
// startup-sequence expansion.
func ApplyCursorStyle(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%d q", cursorStyleCode())
	return err
}
