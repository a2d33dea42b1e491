package cmdexec

import "testing"

func TestTargetArg(t *testing.T) {
	n, ok := targetArg([]string{"-t", "3"})
	if !ok || n != 3 {
		t.Fatalf("targetArg(-t 3) = %d, %v, want 3, true", n, ok)
	}

	if _, ok := targetArg([]string{"-h"}); ok {
		t.Fatalf("targetArg with no -t should be false")
	}

	if _, ok := targetArg([]string{"-t", "not-a-number"}); ok {
		t.Fatalf("targetArg with malformed number should be false")
	}
}

func TestExecute_EmptyLineIsNoop(t *testing.T) {
	if err := Execute(nil, ""); err != nil {
		t.Fatalf("Execute(\"\") = %v, want nil", err)
	}
	if err := Execute(nil, "   "); err != nil {
		t.Fatalf("Execute(whitespace) = %v, want nil", err)
	}
}

func TestExecute_UnrecognizedVerbIsNoop(t *testing.T) {
	if err := Execute(nil, "frobnicate --loudly"); err != nil {
		t.Fatalf("Execute(unknown verb) = %v, want nil", err)
	}
}
