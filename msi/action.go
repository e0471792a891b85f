package msi

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/0xrawsec/golang-utils/datastructs"

	"github.com/tekert/go-winver/winver"
)

// Windows Installer custom action return values.
const (
	ErrorSuccess        uint32 = 0    // ERROR_SUCCESS
	ErrorInstallFailure uint32 = 1603 // ERROR_INSTALL_FAILURE
)

// Properties written by SetVersionInfo.
const (
	PropertyMajor = "VER_WINDOWS_MAJOR"
	PropertyMinor = "VER_WINDOWS_MINOR"
	PropertyBuild = "VER_WINDOWS_BUILD"
)

var versionProperties = datastructs.NewInitSet(PropertyMajor, PropertyMinor, PropertyBuild)

// IsVersionProperty reports whether name is one of the properties set by
// SetVersionInfo.
func IsVersionProperty(name string) bool {
	return versionProperties.Contains(name)
}

// Session is the part of an installer session the custom action writes to.
type Session interface {
	SetProperty(name, value string) error
}

// versionSession restricts writes to the version properties.
type versionSession struct {
	Session
}

func (s versionSession) SetProperty(name, value string) error {
	if !IsVersionProperty(name) {
		return fmt.Errorf("msi: %s is not a version property", name)
	}
	return s.Session.SetProperty(name, value)
}

// SetVersionInfo queries the Windows version and stores its components in s.
//
// A failed query returns ErrorInstallFailure without touching the session; the
// native status is only logged. Failed property writes are logged and otherwise
// ignored.
func SetVersionInfo(s Session, query winver.QueryFunc) uint32 {
	v, err := query()
	if err != nil {
		slog.Error("msi: failed to query windows version", "error", err)
		return ErrorInstallFailure
	}

	vs := versionSession{s}
	props := [...]struct {
		name  string
		value uint32
	}{
		{PropertyMajor, v.Major},
		{PropertyMinor, v.Minor},
		{PropertyBuild, v.Build},
	}

	for _, p := range props {
		value := strconv.FormatUint(uint64(p.value), 10)
		if err := vs.SetProperty(p.name, value); err != nil {
			slog.Warn("msi: failed to set property", "name", p.name, "value", value, "error", err)
			continue
		}
		slog.Debug("msi: set property", "name", p.name, "value", value)
	}

	return ErrorSuccess
}
