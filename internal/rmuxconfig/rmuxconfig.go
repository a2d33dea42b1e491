// Package rmuxconfig loads the one piece of optional, versioned
// configuration rmux carries: the prefix-key chord, so a user can rebind it
// without recompiling (spec.md §2/§4.E's "prefix-key configuration"
// parameter). rmux has no persistent session state (see Non-goals), so this
// is deliberately small next to the teacher's own config loader.
package rmuxconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"rmux/internal/rmuxstate"
)

// File is the on-disk shape of an rmux config file, loaded the way
// internal/config/config.go loads its YAML — a flat struct, no nested
// schema versioning, since there is exactly one setting worth exposing here.
type File struct {
	PrefixKey string `yaml:"prefix_key"`
}

// Load reads and parses path, returning rmuxstate.DefaultPrefixKey
// unchanged if path does not exist or parses to an empty/unrecognized
// chord; unlike the teacher's config loader this is non-fatal by design,
// since a malformed rebind should never prevent rmux from starting.
func Load(path string) rmuxstate.PrefixKey {
	data, err := os.ReadFile(path)
	if err != nil {
		return rmuxstate.DefaultPrefixKey
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return rmuxstate.DefaultPrefixKey
	}

	key, ok := parsePrefixKey(f.PrefixKey)
	if !ok {
		return rmuxstate.DefaultPrefixKey
	}
	return key
}

// parsePrefixKey parses a "ctrl-<letter>" chord string, the only shape the
// prefix protocol supports (spec.md §4.E's chord is always ctrl+<letter>).
func parsePrefixKey(s string) (rmuxstate.PrefixKey, bool) {
	const prefix = "ctrl-"
	if len(s) != len(prefix)+1 || s[:len(prefix)] != prefix {
		return rmuxstate.PrefixKey{}, false
	}
	r := rune(s[len(prefix)])
	if r < 'a' || r > 'z' {
		return rmuxstate.PrefixKey{}, false
	}
	return rmuxstate.PrefixKey{Rune: r, Ctrl: true}, true
}

// DefaultPath is where rmux looks for an optional config file, following
// the teacher's dotfile-in-home-directory convention.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rmux.yaml"
	}
	return home + "/.rmux.yaml"
}
