package support

import (
	"testing"

	"emperror.dev/errors"
	"github.com/0xrawsec/toast"

	"github.com/tekert/go-winver/winver"
)

func TestDefaultPolicy(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	p := DefaultPolicy()
	tt.Assert(p.WorkstationMinMajor == 11)
	tt.Assert(p.ServerMinMajor == 6)
	tt.Assert(p.ServerMinMinor == 3)
	tt.Assert(p.FailOpen)
}

func TestPolicyCheck(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	tests := []struct {
		name    string
		version winver.Version
		message string // empty when supported
	}{
		{"workstation 10", winver.Version{Major: 10, Build: 19045, Role: winver.RoleWorkstation}, MessageWorkstation},
		{"workstation 11", winver.Version{Major: 11, Role: winver.RoleWorkstation}, ""},
		{"workstation 6.3", winver.Version{Major: 6, Minor: 3, Role: winver.RoleWorkstation}, MessageWorkstation},
		{"server 6.2", winver.Version{Major: 6, Minor: 2, Build: 9200, Role: winver.RoleServer}, MessageServer},
		{"server 6.3", winver.Version{Major: 6, Minor: 3, Build: 9600, Role: winver.RoleServer}, ""},
		{"server 10", winver.Version{Major: 10, Build: 20348, Role: winver.RoleServer}, ""},
		{"server 5.2", winver.Version{Major: 5, Minor: 2, Role: winver.RoleServer}, MessageServer},
		{"domain controller 6.1", winver.Version{Major: 6, Minor: 1, Role: winver.RoleDomainController}, MessageServer},
		{"domain controller 6.3", winver.Version{Major: 6, Minor: 3, Role: winver.RoleDomainController}, ""},
		{"unknown role", winver.Version{Major: 5, Role: winver.RoleUnknown}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := toast.FromT(t)

			err := p.Check(tc.version)
			if tc.message == "" {
				tt.CheckErr(err)
				return
			}

			tt.Assert(errors.Is(err, ErrUnsupportedVersion), "got %v", err)

			var ue *UnsupportedError
			tt.Assert(errors.As(err, &ue))
			tt.Assert(ue.Message == tc.message, "got %q", ue.Message)
			tt.Assert(ue.Version == tc.version)

			details := errors.GetDetails(err)
			tt.Assert(len(details) == 4, "got %v", details)
			tt.Assert(details[1] == tc.version.String())
		})
	}
}
