package keyinput

import (
	"io"
	"testing"
	"time"
)

func TestReader_LoneEscFlushesAsStandaloneKey(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr)
	go pw.Write([]byte{0x1B})

	select {
	case key, ok := <-r.Events:
		if !ok {
			t.Fatal("Events closed unexpectedly")
		}
		if key.Code != CodeEscape {
			t.Fatalf("key = %+v, want CodeEscape", key)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a standalone Esc event")
	}
}

func TestReader_EscFollowedByCSIDoesNotFlushEarly(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr)
	go pw.Write([]byte{0x1B, '[', 'A'})

	select {
	case key, ok := <-r.Events:
		if !ok {
			t.Fatal("Events closed unexpectedly")
		}
		if key.Code != CodeArrowUp {
			t.Fatalf("key = %+v, want CodeArrowUp", key)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the arrow-up event")
	}
}

func TestReader_OrdinaryRuneDecodesImmediately(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr)
	go pw.Write([]byte("a"))

	select {
	case key := <-r.Events:
		if key.Code != CodeRune || key.Rune != 'a' {
			t.Fatalf("key = %+v, want rune 'a'", key)
		}
	case <-time.After(escFlushDelay):
		t.Fatal("ordinary rune should decode without waiting on the escape-flush timer")
	}
}
