package winver

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductRole is the kind of Windows installation, as reported in the
// wProductType member of RTL_OSVERSIONINFOEXW.
type ProductRole uint8

const (
	RoleUnknown          ProductRole = iota // not reported or not recognized
	RoleWorkstation                         // VER_NT_WORKSTATION
	RoleDomainController                    // VER_NT_DOMAIN_CONTROLLER
	RoleServer                              // VER_NT_SERVER
)

var roleNames = [...]string{
	RoleUnknown:          "unknown",
	RoleWorkstation:      "workstation",
	RoleDomainController: "domain-controller",
	RoleServer:           "server",
}

func (r ProductRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return roleNames[RoleUnknown]
}

// IsServer reports whether r is one of the server roles.
func (r ProductRole) IsServer() bool {
	return r == RoleDomainController || r == RoleServer
}

// ClassifyRole maps a raw product type code to a ProductRole.
// Codes it does not know about resolve to RoleUnknown.
func ClassifyRole(code byte) ProductRole {
	switch code {
	case 1:
		return RoleWorkstation
	case 2:
		return RoleDomainController
	case 3:
		return RoleServer
	default:
		return RoleUnknown
	}
}

// Version is a snapshot of the operating system version taken from a single
// native call.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
	Role  ProductRole
}

// String returns the version formatted as "major.minor.build".
// It implements the [fmt.Stringer] interface.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// ParseVersion parses the "major.minor.build" form produced by [Version.String].
// The role is not part of that form, so the returned Version has RoleUnknown.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor.build", s)
	}

	var fields [3]uint32
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		fields[i] = uint32(n)
	}

	return Version{Major: fields[0], Minor: fields[1], Build: fields[2]}, nil
}

// QueryFunc returns the current operating system version.
// [Query] is the implementation used outside of tests.
type QueryFunc func() (Version, error)
