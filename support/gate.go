package support

import (
	"log/slog"

	"emperror.dev/errors"

	"github.com/tekert/go-winver/winver"
)

// Title of the error dialog.
const DialogTitle = "Example"

// Process exit codes returned by Gate.Run.
const (
	ExitSupported   = 0
	ExitUnsupported = 1
)

// Notifier tells the user that the installation is not supported.
type Notifier interface {
	Notify(title, message string) error
}

// State is a step of the gate. Run walks Init, Queried, Evaluated, Terminal
// once, with no retries.
type State uint8

const (
	StateInit State = iota
	StateQueried
	StateEvaluated
	StateTerminal
)

var stateNames = [...]string{"init", "queried", "evaluated", "terminal"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// Outcome is the result of evaluating the policy.
type Outcome uint8

const (
	Supported    Outcome = iota // every check passed or none applied
	Undetermined                // the version could not be queried
	Unsupported                 // a check failed
)

var outcomeNames = [...]string{"supported", "undetermined", "unsupported"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "invalid"
}

// Decision is what Evaluate found.
type Decision struct {
	Outcome Outcome
	Version winver.Version
	// Err is the query error for Undetermined, or the policy error for Unsupported.
	Err error
}

// Message returns the user facing text of an Unsupported decision.
func (d Decision) Message() string {
	var ue *UnsupportedError
	if d.Outcome == Unsupported && errors.As(d.Err, &ue) {
		return ue.Message
	}
	return ""
}

// errNoQuery is returned by Evaluate when there is no way to query the version.
const errNoQuery = errors.Sentinel("support: no version query")

// defaultQuery is used when Gate.Query is nil. It is winver.Query on windows.
var defaultQuery winver.QueryFunc

// Gate queries the version, applies Policy and reports the result.
type Gate struct {
	Policy Policy
	// Query defaults to winver.Query on windows.
	Query    winver.QueryFunc
	Notifier Notifier // may be nil
	Quiet    bool     // never notify

	state State
}

// State returns the step the gate reached.
func (g *Gate) State() State {
	return g.state
}

// Evaluate queries the version and applies the policy. It has no user visible
// side effects.
func (g *Gate) Evaluate() Decision {
	g.state = StateInit

	query := g.Query
	if query == nil {
		query = defaultQuery
	}
	if query == nil {
		g.state = StateEvaluated
		return Decision{Outcome: Undetermined, Err: errNoQuery}
	}

	v, err := query()
	g.state = StateQueried
	if err != nil {
		g.state = StateEvaluated
		return Decision{Outcome: Undetermined, Err: err}
	}

	err = g.Policy.Check(v)
	g.state = StateEvaluated
	if err != nil {
		return Decision{Outcome: Unsupported, Version: v, Err: err}
	}
	return Decision{Outcome: Supported, Version: v}
}

// Run evaluates the policy, notifies the user of an unsupported version unless
// Quiet is set, and returns the process exit code.
func (g *Gate) Run() int {
	d := g.Evaluate()
	defer func() { g.state = StateTerminal }()

	switch d.Outcome {
	case Undetermined:
		if g.Policy.FailOpen {
			slog.Warn("support: windows version unavailable, assuming supported", "error", d.Err)
			return ExitSupported
		}
		slog.Error("support: windows version unavailable", "error", d.Err)
		return ExitUnsupported

	case Unsupported:
		slog.Error("support: unsupported windows version",
			append([]any{"error", d.Err}, errors.GetDetails(d.Err)...)...)
		if !g.Quiet && g.Notifier != nil {
			if err := g.Notifier.Notify(DialogTitle, d.Message()); err != nil {
				slog.Warn("support: failed to show notification", "error", err)
			}
		}
		return ExitUnsupported
	}

	slog.Info("support: windows version supported", "version", d.Version.String(), "role", d.Version.Role.String())
	return ExitSupported
}
