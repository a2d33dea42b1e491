package keyinput

import (
	"io"
	"time"
)

// escFlushDelay is how long Reader waits for more bytes after a lone ESC (or
// an incomplete CSI sequence) before concluding no continuation is coming
// and delivering a standalone CodeEscape, the same ttimeoutlen-style
// escape-disambiguation every raw-mode terminal reader needs: a bare ESC
// keypress arrives as exactly one 0x1B byte with nothing following, and
// Decode alone can't tell that apart from the first byte of a CSI sequence
// still in flight.
const escFlushDelay = 25 * time.Millisecond

// Reader decodes key events from an io.Reader (host stdin) and delivers
// them on a channel, so the Supervisor Loop can poll for the next event
// with a bounded timeout (spec.md §4.H) instead of blocking directly on a
// terminal read the way the teacher's own ReadInput goroutine does.
type Reader struct {
	Events chan Key
	src    io.Reader
}

// NewReader starts a background goroutine reading src and decoding key
// events onto the returned Reader's Events channel. The goroutine exits
// when src.Read returns an error (host terminal closed).
func NewReader(src io.Reader) *Reader {
	r := &Reader{Events: make(chan Key, 64), src: src}
	go r.run()
	return r
}

// run decodes pending bytes on every chunk arrival and additionally on an
// escape-flush timer, since a lone ESC never becomes "complete" by Decode's
// own rules — it takes the absence of further bytes, not their presence, to
// resolve it.
func (r *Reader) run() {
	defer close(r.Events)

	chunks := make(chan []byte)
	go func() {
		defer close(chunks)
		buf := make([]byte, 256)
		for {
			n, err := r.src.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				chunks <- chunk
			}
			if err != nil {
				return
			}
		}
	}()

	pending := make([]byte, 0, 256)
	var timer *time.Timer
	var timerC <-chan time.Time
	armed := false

	armTimer := func() {
		switch {
		case timer == nil:
			timer = time.NewTimer(escFlushDelay)
		case armed:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(escFlushDelay)
		default:
			timer.Reset(escFlushDelay)
		}
		timerC = timer.C
		armed = true
	}
	disarmTimer := func() {
		if armed {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			armed = false
		}
		timerC = nil
	}

	decode := func() {
		for len(pending) > 0 {
			key, consumed, ok := Decode(pending)
			if !ok {
				armTimer()
				return
			}
			disarmTimer()
			pending = pending[consumed:]
			r.Events <- key
		}
	}

	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				return
			}
			pending = append(pending, chunk...)
			decode()

		case <-timerC:
			armed = false
			timerC = nil
			// No continuation arrived in time: the pending bytes start with
			// an ESC (every incomplete decode Decode reports, a lone ESC or
			// an unfinished CSI sequence, begins with one), so deliver that
			// ESC as a standalone key and let whatever follows decode fresh
			// on the next pass.
			if len(pending) > 0 && pending[0] == 0x1B {
				pending = pending[1:]
				r.Events <- Key{Code: CodeEscape}
			}
			decode()
		}
	}
}
