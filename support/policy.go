// Package support decides whether the running Windows version is supported,
// and reports the decision the way a setup bootstrapper expects: a process
// exit code and, optionally, an error dialog.
package support

import (
	"emperror.dev/errors"
	"github.com/creasty/defaults"

	"github.com/tekert/go-winver/winver"
)

// ErrUnsupportedVersion is wrapped by every error returned from Policy.Check.
const ErrUnsupportedVersion = errors.Sentinel("unsupported windows version")

// Messages shown to the user when a check fails.
const (
	MessageWorkstation = "Supported on Windows 10 and newer"
	MessageServer      = "Supported on Windows Server 2012 and newer"
)

// Policy holds the minimum versions per product role.
type Policy struct {
	// Workstations need at least this major version.
	WorkstationMinMajor uint32 `default:"11"`

	// Servers and domain controllers need at least ServerMinMajor.ServerMinMinor.
	ServerMinMajor uint32 `default:"6"`
	ServerMinMinor uint32 `default:"3"`

	// FailOpen treats a failed version query as supported. The support matrix
	// cannot be evaluated without a version, and setup historically proceeds.
	FailOpen bool `default:"true"`
}

// DefaultPolicy returns the policy used by the supported command.
func DefaultPolicy() Policy {
	var p Policy
	defaults.MustSet(&p)
	return p
}

// Check returns an error wrapping ErrUnsupportedVersion when v does not meet
// the policy. Installations with an unknown role are not constrained.
func (p Policy) Check(v winver.Version) error {
	switch {
	case v.Role == winver.RoleWorkstation:
		if v.Major < p.WorkstationMinMajor {
			return p.unsupported(v, MessageWorkstation)
		}
	case v.Role.IsServer():
		if v.Major < p.ServerMinMajor || (v.Major == p.ServerMinMajor && v.Minor < p.ServerMinMinor) {
			return p.unsupported(v, MessageServer)
		}
	}
	return nil
}

// UnsupportedError is returned by Policy.Check. It matches
// ErrUnsupportedVersion with errors.Is.
type UnsupportedError struct {
	Version winver.Version
	Message string
}

func (e *UnsupportedError) Error() string {
	return e.Message
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupportedVersion
}

func (p Policy) unsupported(v winver.Version, message string) error {
	return errors.WithDetails(
		errors.WithStackDepth(&UnsupportedError{Version: v, Message: message}, 1),
		"version", v.String(),
		"role", v.Role.String(),
	)
}
