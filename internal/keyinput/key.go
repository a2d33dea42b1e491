// Package keyinput decodes raw host-terminal key bytes into a small closed
// set of key identities, the shape the Input State Machine's transition
// table (spec.md §4.E) is expressed in ("digit d in 1..=9", "Esc",
// "Backspace", an arrow key) rather than in raw bytes.
package keyinput

// Code identifies a decoded key.
type Code int

const (
	CodeUnknown Code = iota
	CodeRune         // a printable character, in Key.Rune
	CodeEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeArrowUp
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
)

// Modifier is a bitmask of held modifier keys. Host terminals only ever
// report Ctrl reliably out-of-band (as a control byte) for the chords this
// spec needs; Alt/Shift are not part of the decoded surface because no
// transition in spec.md §4.E depends on them.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
)

// Key is one decoded key event: a code, its modifiers, and — for CodeRune —
// the literal character struck.
type Key struct {
	Code Code
	Mod  Modifier
	Rune rune
}

// IsCtrl reports whether ctrl was held.
func (k Key) IsCtrl() bool { return k.Mod&ModCtrl != 0 }

// IsDigit reports whether the key is a printable ASCII digit, returning the
// numeric value when it is.
func (k Key) IsDigit() (digit int, ok bool) {
	if k.Code != CodeRune || k.Rune < '0' || k.Rune > '9' {
		return 0, false
	}
	return int(k.Rune - '0'), true
}
