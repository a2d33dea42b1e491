package compositor

import (
	"bytes"
	"fmt"
	"time"

	"github.com/muesli/termenv"

	"rmux/internal/pane"
	"rmux/internal/rmuxstate"
)

// statusProfile is a fixed ANSI color profile for the status bar, matching
// the Rust original's hard-coded Style::default().bg(Color::Green).fg(Color::Black)
// (original_source/src/main.rs) rather than termenv's auto-detected profile,
// since the status bar's black-on-green banner is a constant part of rmux's
// look, not something that should degrade silently on a dumber terminal.
var statusProfile = termenv.ANSI

const boxHorizontal, boxVertical = '─', '│'
const boxTL, boxTR, boxBL, boxBR = '┌', '┐', '└', '┘'

// Frame renders one full compositor pass into buf: pane borders and
// content, the status bar, and (in CommandPrompt mode) the command overlay.
// It returns the host-cursor position the caller should move the real
// terminal cursor to once the frame has been flushed.
func Frame(buf *bytes.Buffer, state *rmuxstate.AppState, rows, cols int) (cursorRow, cursorCol int) {
	buf.WriteString("\x1b[H")

	full := Rect{X: 0, Y: 0, Width: cols, Height: rows}
	content := Rect{X: 0, Y: 0, Width: cols, Height: rows - 1}
	statusRect := Rect{X: 0, Y: rows - 1, Width: cols, Height: 1}

	win := state.ActiveWindow()
	rects := PaneRects(content, win)
	for i, r := range rects {
		p := win.Panes[i]
		active := i == win.ActivePane
		renderPaneBorder(buf, r, i, active)

		inner := r.Inner()
		if p.NeedsResize(inner.Height, inner.Width) {
			p.Resize(inner.Height, inner.Width)
		}
		renderPaneContent(buf, p, inner)

		if active {
			pr, pc := p.Screen.Cursor()
			if pr > inner.Height-1 {
				pr = inner.Height - 1
			}
			if pc > inner.Width-1 {
				pc = inner.Width - 1
			}
			cursorRow = inner.Y + pr
			cursorCol = inner.X + pc
		}
	}

	renderStatusBar(buf, state, statusRect)

	if state.Mode == rmuxstate.ModeCommandPrompt {
		overlay := CenteredOverlay(full, 80, 3)
		renderCommandOverlay(buf, state, overlay)
		cursorRow = overlay.Y + 1
		cursorCol = overlay.X + 1 + len(state.PromptBuffer) + 1
	}

	return cursorRow, cursorCol
}

func moveTo(buf *bytes.Buffer, row, col int) {
	fmt.Fprintf(buf, "\x1b[%d;%dH", row+1, col+1)
}

func renderPaneBorder(buf *bytes.Buffer, r Rect, idx int, active bool) {
	title := fmt.Sprintf("  pane %d", idx+1)
	if active {
		title = fmt.Sprintf("* pane %d", idx+1)
	}
	if len(title) > r.Width-2 && r.Width > 2 {
		title = title[:r.Width-2]
	}

	moveTo(buf, r.Y, r.X)
	buf.WriteRune(boxTL)
	writeTitledEdge(buf, title, r.Width-2)
	buf.WriteRune(boxTR)

	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		moveTo(buf, y, r.X)
		buf.WriteRune(boxVertical)
		moveTo(buf, y, r.X+r.Width-1)
		buf.WriteRune(boxVertical)
	}

	moveTo(buf, r.Y+r.Height-1, r.X)
	buf.WriteRune(boxBL)
	for i := 0; i < r.Width-2; i++ {
		buf.WriteRune(boxHorizontal)
	}
	buf.WriteRune(boxBR)
}

func writeTitledEdge(buf *bytes.Buffer, title string, width int) {
	if width < 1 {
		return
	}
	n := 0
	if title != "" {
		buf.WriteString(title)
		n = len([]rune(title))
	}
	for ; n < width; n++ {
		buf.WriteRune(boxHorizontal)
	}
}

func renderPaneContent(buf *bytes.Buffer, p *pane.Pane, inner Rect) {
	for row := 0; row < inner.Height; row++ {
		moveTo(buf, inner.Y+row, inner.X)
		p.Screen.RenderRow(buf, row, inner.Width)
	}
}

func renderStatusBar(buf *bytes.Buffer, state *rmuxstate.AppState, r Rect) {
	modeStr := ""
	switch state.Mode {
	case rmuxstate.ModePrefixArmed:
		modeStr = "PREFIX"
	case rmuxstate.ModeCommandPrompt:
		modeStr = ":"
	}

	windowsList := ""
	for i := range state.Windows {
		if i == state.ActiveIdx {
			windowsList += fmt.Sprintf(" #[%d]", i+1)
		} else {
			windowsList += fmt.Sprintf(" %d", i+1)
		}
	}

	timeStr := time.Now().Format("15:04")
	text := fmt.Sprintf(" %s | %s | %s ", modeStr, trimSpace(windowsList), timeStr)
	if len([]rune(text)) < r.Width {
		text += repeat(' ', r.Width-len([]rune(text)))
	}
	if len([]rune(text)) > r.Width {
		text = string([]rune(text)[:r.Width])
	}

	moveTo(buf, r.Y, r.X)
	styled := statusProfile.String(text).Background(statusProfile.Color("2")).Foreground(statusProfile.Color("0"))
	buf.WriteString(styled.String())
}

func renderCommandOverlay(buf *bytes.Buffer, state *rmuxstate.AppState, r Rect) {
	renderPaneBorder(buf, r, -1, false)
	moveTo(buf, r.Y, r.X+2)
	buf.WriteString(" command ")

	inner := r.Inner()
	moveTo(buf, inner.Y, inner.X)
	line := ":" + string(state.PromptBuffer)
	if len([]rune(line)) > inner.Width {
		line = string([]rune(line)[len([]rune(line))-inner.Width:])
	}
	buf.WriteString(line)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}

func repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
