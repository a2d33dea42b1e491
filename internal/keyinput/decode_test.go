package keyinput

import "testing"

func TestDecode_PrintableRune(t *testing.T) {
	key, n, ok := Decode([]byte("a"))
	if !ok || n != 1 || key.Code != CodeRune || key.Rune != 'a' {
		t.Fatalf("Decode(a) = %+v, %d, %v", key, n, ok)
	}
}

func TestDecode_CtrlLetter(t *testing.T) {
	key, n, ok := Decode([]byte{0x02}) // ctrl+b
	if !ok || n != 1 || key.Code != CodeRune || key.Rune != 'b' || !key.IsCtrl() {
		t.Fatalf("Decode(ctrl+b) = %+v, %d, %v", key, n, ok)
	}
}

func TestDecode_Enter(t *testing.T) {
	key, n, ok := Decode([]byte{'\r'})
	if !ok || n != 1 || key.Code != CodeEnter {
		t.Fatalf("Decode(CR) = %+v, %d, %v", key, n, ok)
	}
}

func TestDecode_Backspace(t *testing.T) {
	key, n, ok := Decode([]byte{0x7F})
	if !ok || n != 1 || key.Code != CodeBackspace {
		t.Fatalf("Decode(DEL) = %+v, %d, %v", key, n, ok)
	}
}

func TestDecode_ArrowKeys(t *testing.T) {
	cases := map[byte]Code{
		'A': CodeArrowUp,
		'B': CodeArrowDown,
		'C': CodeArrowRight,
		'D': CodeArrowLeft,
	}
	for final, want := range cases {
		buf := []byte{0x1B, '[', final}
		key, n, ok := Decode(buf)
		if !ok || n != 3 || key.Code != want {
			t.Fatalf("Decode(CSI %c) = %+v, %d, %v, want code %v", final, key, n, ok, want)
		}
	}
}

func TestDecode_BareEscape(t *testing.T) {
	key, n, ok := Decode([]byte{0x1B, 'x'})
	if !ok || n != 1 || key.Code != CodeEscape {
		t.Fatalf("Decode(ESC x) = %+v, %d, %v", key, n, ok)
	}
}

func TestDecode_IncompleteEscapeAtEnd(t *testing.T) {
	_, _, ok := Decode([]byte{0x1B})
	if ok {
		t.Fatalf("Decode(bare trailing ESC) should report incomplete")
	}
	_, _, ok = Decode([]byte{0x1B, '['})
	if ok {
		t.Fatalf("Decode(ESC [ ) should report incomplete")
	}
}

func TestKey_IsDigit(t *testing.T) {
	k := Key{Code: CodeRune, Rune: '7'}
	d, ok := k.IsDigit()
	if !ok || d != 7 {
		t.Fatalf("IsDigit() = %d, %v, want 7, true", d, ok)
	}

	k = Key{Code: CodeRune, Rune: 'a'}
	if _, ok := k.IsDigit(); ok {
		t.Fatalf("IsDigit() on 'a' should be false")
	}
}
