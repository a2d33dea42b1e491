package inputmode

import (
	"testing"

	"rmux/internal/keyinput"
	"rmux/internal/rmuxstate"
)

func newTestState(t *testing.T) *rmuxstate.AppState {
	t.Helper()
	s := rmuxstate.New("sh", nil)
	if err := s.CreateWindow(); err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	t.Cleanup(s.KillAll)
	return s
}

func TestHandleKey_HardQuitOverridesAnyMode(t *testing.T) {
	s := newTestState(t)
	s.Mode = rmuxstate.ModeCommandPrompt
	out := HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: 'q', Mod: keyinput.ModCtrl})
	if !out.Quit {
		t.Fatalf("ctrl+q should quit regardless of mode")
	}
}

func TestHandleKey_PrefixChordArms(t *testing.T) {
	s := newTestState(t)
	HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: 'b', Mod: keyinput.ModCtrl})
	if s.Mode != rmuxstate.ModePrefixArmed {
		t.Fatalf("Mode = %v, want ModePrefixArmed", s.Mode)
	}
}

func TestHandleKey_PrefixArmed_UnrecognizedReturnsToPassthrough(t *testing.T) {
	s := newTestState(t)
	s.Mode = rmuxstate.ModePrefixArmed
	HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: 'z'})
	if s.Mode != rmuxstate.ModePassthrough {
		t.Fatalf("Mode = %v, want ModePassthrough", s.Mode)
	}
}

func TestHandleKey_PrefixArmed_ColonEntersCommandPrompt(t *testing.T) {
	s := newTestState(t)
	s.Mode = rmuxstate.ModePrefixArmed
	HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: ':'})
	if s.Mode != rmuxstate.ModeCommandPrompt {
		t.Fatalf("Mode = %v, want ModeCommandPrompt", s.Mode)
	}
	if len(s.PromptBuffer) != 0 {
		t.Fatalf("PromptBuffer should start empty, got %q", s.PromptBuffer)
	}
}

func TestHandleKey_PrefixArmed_DigitSelectsWindow(t *testing.T) {
	s := newTestState(t)
	if err := s.CreateWindow(); err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	s.Mode = rmuxstate.ModePrefixArmed
	HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: '1'})
	if s.ActiveIdx != 0 {
		t.Fatalf("ActiveIdx = %d, want 0 after prefix+1", s.ActiveIdx)
	}
}

func TestHandleKey_CommandPrompt_TypeBackspaceEscape(t *testing.T) {
	s := newTestState(t)
	s.Mode = rmuxstate.ModeCommandPrompt

	HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: 'n'})
	HandleKey(s, keyinput.Key{Code: keyinput.CodeRune, Rune: 'w'})
	if string(s.PromptBuffer) != "nw" {
		t.Fatalf("PromptBuffer = %q, want \"nw\"", s.PromptBuffer)
	}

	HandleKey(s, keyinput.Key{Code: keyinput.CodeBackspace})
	if string(s.PromptBuffer) != "n" {
		t.Fatalf("PromptBuffer after backspace = %q, want \"n\"", s.PromptBuffer)
	}

	HandleKey(s, keyinput.Key{Code: keyinput.CodeEscape})
	if s.Mode != rmuxstate.ModePassthrough {
		t.Fatalf("Mode after escape = %v, want ModePassthrough", s.Mode)
	}
	if len(s.PromptBuffer) != 0 {
		t.Fatalf("PromptBuffer after escape should be cleared, got %q", s.PromptBuffer)
	}
}

func TestHandleKey_CommandPrompt_EnterDispatchesAndClears(t *testing.T) {
	s := newTestState(t)
	s.Mode = rmuxstate.ModeCommandPrompt
	s.PromptBuffer = []byte("next-window")

	HandleKey(s, keyinput.Key{Code: keyinput.CodeEnter})

	if s.Mode != rmuxstate.ModePassthrough {
		t.Fatalf("Mode after enter = %v, want ModePassthrough", s.Mode)
	}
	if len(s.PromptBuffer) != 0 {
		t.Fatalf("PromptBuffer after enter should be cleared, got %q", s.PromptBuffer)
	}
}
