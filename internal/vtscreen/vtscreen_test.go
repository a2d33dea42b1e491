package vtscreen

import (
	"bytes"
	"strings"
	"testing"
)

func TestScreen_WriteAndRenderRow(t *testing.T) {
	s := New(5, 20)
	s.Write([]byte("hello"))

	var buf bytes.Buffer
	s.RenderRow(&buf, 0, 20)

	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("RenderRow(0) = %q, want it to contain \"hello\"", buf.String())
	}
}

func TestScreen_Resize(t *testing.T) {
	s := New(10, 10)
	s.Resize(20, 40)
	rows, cols := s.Size()
	if rows != 20 || cols != 40 {
		t.Fatalf("Size() = %d,%d, want 20,40", rows, cols)
	}
}

func TestScreen_ResizeClampsToOne(t *testing.T) {
	s := New(10, 10)
	s.Resize(0, -5)
	rows, cols := s.Size()
	if rows != 1 || cols != 1 {
		t.Fatalf("Size() after degenerate resize = %d,%d, want 1,1", rows, cols)
	}
}

func TestScreen_RenderRow_OutOfRangeIsBlank(t *testing.T) {
	s := New(2, 10)
	var buf bytes.Buffer
	s.RenderRow(&buf, 99, 10)
	if buf.Len() != 10 {
		t.Fatalf("RenderRow out of range wrote %d bytes, want 10 blanks", buf.Len())
	}
}
