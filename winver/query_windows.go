//go:build windows

package winver

import (
	"log/slog"
	"unsafe"
)

// Query returns the version of the running operating system.
//
// Every call goes to RtlGetVersion. If the call fails the returned error is a
// [StatusError] holding the status it returned.
func Query() (Version, error) {
	var osvi osVersionInfoEx
	osvi.OSVersionInfoSize = uint32(unsafe.Sizeof(osvi))

	if status := rtlGetVersionFn(&osvi); status != 0 {
		slog.Debug("winver: RtlGetVersion failed", "error", StatusError(status))
		return Version{}, StatusError(status)
	}

	v := osvi.version()
	LogTrace("winver: RtlGetVersion", "version", v, "role", v.Role, "platform", osvi.PlatformId)
	return v, nil
}
