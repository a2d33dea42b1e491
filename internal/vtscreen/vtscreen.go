// Package vtscreen wraps the external VT100/xterm emulator (§4.B of the
// spec) that each pane uses to maintain its styled cell grid and cursor.
// rmux delegates emulation itself to github.com/vito/midterm and adds only
// the mutual-exclusion discipline the spec's concurrency model requires.
package vtscreen

import (
	"bytes"
	"strings"
	"sync"

	"github.com/vito/midterm"
)

// Screen is the per-pane VT Screen: a mutex-guarded midterm.Terminal.
// The Pane Reader locks it only while decoding one read's worth of bytes;
// the Compositor locks it only while sampling cells for the current frame.
// Neither holds the lock across PTY I/O — see internal/pane and
// internal/compositor.
type Screen struct {
	mu   sync.Mutex
	term *midterm.Terminal
	rows int
	cols int
}

// New creates a Screen sized rows x cols.
func New(rows, cols int) *Screen {
	return &Screen{
		term: midterm.NewTerminal(rows, cols),
		rows: rows,
		cols: cols,
	}
}

// Write feeds raw child-output bytes to the emulator.
func (s *Screen) Write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term.Write(p)
}

// Resize changes the emulator's grid dimensions, preserving contents
// best-effort (delegated to midterm).
func (s *Screen) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term.Resize(rows, cols)
	s.rows = rows
	s.cols = cols
}

// Size reports the screen's last-applied rows and cols.
func (s *Screen) Size() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows, s.cols
}

// Cursor reports the emulator's current cursor position.
func (s *Screen) Cursor() (row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term.Cursor.Y, s.term.Cursor.X
}

// RenderRow writes one emulated row as a run of SGR-styled spans, padding
// short lines with blanks out to cols. It mirrors the region-walk the
// teacher lineage uses in its own render path (see
// internal/session/client/render.go's RenderLineFrom): each midterm.Format
// region already renders its own SGR sequence via Render(), including the
// reverse-video attribute for inverse cells, which is the terminal's native
// fg/bg swap — so no manual color decomposition is needed here.
func (s *Screen) RenderRow(buf *bytes.Buffer, row, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row < 0 || row >= len(s.term.Content) {
		buf.WriteString(strings.Repeat(" ", cols))
		return
	}
	line := s.term.Content[row]
	var pos int
	var lastFormat midterm.Format
	var written int
	for region := range s.term.Format.Regions(row) {
		f := region.F
		if f != lastFormat {
			buf.WriteString("\033[0m")
			buf.WriteString(f.Render())
			lastFormat = f
		}
		end := pos + region.Size
		if pos < len(line) {
			contentEnd := end
			if contentEnd > len(line) {
				contentEnd = len(line)
			}
			s := string(line[pos:contentEnd])
			buf.WriteString(s)
			written += len([]rune(s))
		}
		padStart := len(line)
		if padStart < pos {
			padStart = pos
		}
		if padStart < end {
			n := end - padStart
			buf.WriteString(strings.Repeat(" ", n))
			written += n
		}
		pos = end
	}
	buf.WriteString("\033[0m")
	if written < cols {
		buf.WriteString(strings.Repeat(" ", cols-written))
	}
}
