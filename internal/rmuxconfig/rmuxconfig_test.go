package rmuxconfig

import (
	"os"
	"path/filepath"
	"testing"

	"rmux/internal/rmuxstate"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if got != rmuxstate.DefaultPrefixKey {
		t.Fatalf("Load(missing) = %+v, want default %+v", got, rmuxstate.DefaultPrefixKey)
	}
}

func TestLoad_ValidRebind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rmux.yaml")
	if err := os.WriteFile(path, []byte("prefix_key: ctrl-a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got := Load(path)
	want := rmuxstate.PrefixKey{Rune: 'a', Ctrl: true}
	if got != want {
		t.Fatalf("Load(ctrl-a) = %+v, want %+v", got, want)
	}
}

func TestLoad_MalformedValueReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rmux.yaml")
	if err := os.WriteFile(path, []byte("prefix_key: not-a-chord\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got := Load(path)
	if got != rmuxstate.DefaultPrefixKey {
		t.Fatalf("Load(malformed) = %+v, want default %+v", got, rmuxstate.DefaultPrefixKey)
	}
}
