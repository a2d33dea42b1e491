package keyinput

import "unicode/utf8"

// Decode parses one key event from the front of buf. It returns the decoded
// Key, the number of bytes consumed, and ok=false when buf holds an
// incomplete escape sequence and the caller should wait for more bytes
// before decoding again (mirroring the ESC-disambiguation shape of
// HandleEscape/HandleCSI in the teacher lineage's
// internal/session/client/input.go, simplified to a single-shot decode).
// Decode itself keeps no timer: resolving a lone ESC that is never followed
// by more bytes is left to Reader's escape-flush timer (see escFlushDelay).
func Decode(buf []byte) (key Key, consumed int, ok bool) {
	if len(buf) == 0 {
		return Key{}, 0, false
	}

	b := buf[0]

	switch b {
	case 0x1B:
		return decodeEscape(buf)
	case '\r', '\n':
		return Key{Code: CodeEnter}, 1, true
	case '\t':
		return Key{Code: CodeTab}, 1, true
	case 0x7F, 0x08:
		return Key{Code: CodeBackspace}, 1, true
	}

	// Control bytes 0x01-0x1A are ctrl+letter (ctrl+a .. ctrl+z), excluding
	// the bytes already claimed above (Backspace=0x08, Tab=0x09,
	// Enter=0x0A/0x0D).
	if b >= 0x01 && b <= 0x1A {
		switch b {
		case 0x09, 0x0A, 0x0D:
			// handled above; unreachable here but kept for clarity.
		default:
			r := rune('a' + (b - 0x01))
			return Key{Code: CodeRune, Mod: ModCtrl, Rune: r}, 1, true
		}
	}

	// Printable UTF-8 rune.
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		// Not valid UTF-8 — consume the byte as an unknown key so the
		// caller always makes progress.
		return Key{Code: CodeUnknown}, 1, true
	}
	return Key{Code: CodeRune, Rune: r}, size, true
}

// decodeEscape handles the byte sequence starting at an ESC (0x1B). It
// recognizes the CSI arrow-key sequences rmux forwards to panes. An ESC
// followed by anything other than '[' decodes as CodeEscape, any other
// complete CSI sequence as CodeUnknown, and a buffer-final ESC or an
// unfinished CSI sequence is reported as incomplete (ok=false).
func decodeEscape(buf []byte) (key Key, consumed int, ok bool) {
	if len(buf) < 2 {
		// Bare ESC at the end of the buffer — could be the start of a CSI
		// sequence whose remaining bytes haven't arrived yet. Report it as
		// incomplete so the caller waits for more input.
		return Key{}, 0, false
	}
	if buf[1] != '[' {
		// ESC not followed by CSI introducer: treat as a bare Escape key,
		// consuming only the ESC byte so the second byte decodes on its own.
		return Key{Code: CodeEscape}, 1, true
	}
	if len(buf) < 3 {
		return Key{}, 0, false
	}

	i := 2
	for i < len(buf) && buf[i] >= 0x30 && buf[i] <= 0x3F {
		i++
	}
	for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x2F {
		i++
	}
	if i >= len(buf) {
		return Key{}, 0, false
	}

	final := buf[i]
	total := i + 1
	switch final {
	case 'A':
		return Key{Code: CodeArrowUp}, total, true
	case 'B':
		return Key{Code: CodeArrowDown}, total, true
	case 'C':
		return Key{Code: CodeArrowRight}, total, true
	case 'D':
		return Key{Code: CodeArrowLeft}, total, true
	default:
		// Unrecognized CSI sequence: consume it whole and report unknown so
		// its bytes are never replayed as if they were separate keys.
		return Key{Code: CodeUnknown}, total, true
	}
}
