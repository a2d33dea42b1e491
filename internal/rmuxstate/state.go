package rmuxstate

import "time"

// Mode is the tagged-variant Mode from spec.md §3: Passthrough /
// PrefixArmed / CommandPrompt. Go has no sum-type facility, so — following
// the same idiom the teacher lineage uses for its own InputMode (an enum
// plus sidecar fields that are only meaningful for the matching variant,
// e.g. Wrapper.PendingEsc/EscTimer) — ArmedAt is meaningful only when Mode
// == ModePrefixArmed, and PromptBuffer only when Mode == ModeCommandPrompt.
type Mode int

const (
	ModePassthrough Mode = iota
	ModePrefixArmed
	ModeCommandPrompt
)

// PrefixKey identifies the two-stroke command protocol's first key: a
// keycode plus modifier mask, per spec.md §3 ("prefix-key configuration
// (keycode + modifier mask)").
type PrefixKey struct {
	Rune     rune
	Ctrl     bool
}

// DefaultPrefixKey is control+B, spec.md §4.E's default prefix chord.
var DefaultPrefixKey = PrefixKey{Rune: 'b', Ctrl: true}

// DefaultEscapeTimeoutMS is the default prefix escape timeout in
// milliseconds (spec.md §3, §9).
const DefaultEscapeTimeoutMS = 500

// AppState owns the ordered, non-empty sequence of Windows, which one is
// active, the current Mode, and the prefix protocol configuration.
//
// Invariant: ActiveIdx < len(Windows) while any window exists; when the
// last window is reaped, the supervisor loop exits (see internal/supervisor).
type AppState struct {
	Windows   []*Window
	ActiveIdx int

	Mode Mode

	// PrefixKey and EscapeTimeoutMS configure the two-stroke command
	// protocol (spec.md §4.E).
	PrefixKey      PrefixKey
	EscapeTimeoutMS int

	// ArmedAt is meaningful only when Mode == ModePrefixArmed: the instant
	// the prefix was struck, used to compute elapsed time against
	// EscapeTimeoutMS. Per spec.md §9, this field is currently inert — every
	// code path in PrefixArmed returns to Passthrough regardless of
	// elapsed time — but it is kept for future re-binding customization.
	ArmedAt time.Time

	// PromptBuffer is meaningful only when Mode == ModeCommandPrompt: the
	// line-editor buffer for ':'-style textual commands.
	PromptBuffer []byte

	// ShellCommand/ShellArgs is the child command new panes spawn.
	ShellCommand string
	ShellArgs    []string
}

// New creates an AppState with default prefix configuration and no windows.
// Callers create the first window with CreateWindow before entering the
// supervisor loop.
func New(shellCommand string, shellArgs []string) *AppState {
	return &AppState{
		Mode:            ModePassthrough,
		PrefixKey:       DefaultPrefixKey,
		EscapeTimeoutMS: DefaultEscapeTimeoutMS,
		ShellCommand:    shellCommand,
		ShellArgs:       shellArgs,
	}
}

// ActiveWindow returns the currently active window.
func (a *AppState) ActiveWindow() *Window {
	return a.Windows[a.ActiveIdx]
}

// Empty reports whether no windows remain — the supervisor's exit signal.
func (a *AppState) Empty() bool {
	return len(a.Windows) == 0
}

// clampActiveIdx keeps ActiveIdx within [0, len(Windows)) after a removal.
func (a *AppState) clampActiveIdx() {
	if a.ActiveIdx >= len(a.Windows) {
		a.ActiveIdx = len(a.Windows) - 1
	}
	if a.ActiveIdx < 0 {
		a.ActiveIdx = 0
	}
}
