package supervisor

import "os/exec"

// DiscoverShell picks the child command new panes spawn: $SHELL if set and
// resolvable, else the first of bash/sh found on PATH, else a hard-coded
// /bin/sh fallback. This is the POSIX analogue of the Rust original's
// detect_shell windows pwsh/cmd probe (_examples/original_source/src/main.rs),
// adapted to the POSIX target spec.md's expansion specifies.
func DiscoverShell(envShell string) string {
	if envShell != "" {
		if _, err := exec.LookPath(envShell); err == nil {
			return envShell
		}
	}
	for _, candidate := range []string{"bash", "sh"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return "/bin/sh"
}
