//go:build windows

package winver

import (
	"unsafe"
)

// https://learn.microsoft.com/en-us/windows/win32/devnotes/rtlgetversion
// NTSTATUS RtlGetVersion(
//     _Out_ PRTL_OSVERSIONINFOW lpVersionInformation
//   );

// Replaced in tests to simulate a failing call.
var rtlGetVersionFn = rtlGetVersionStatus

// Returns the raw NTSTATUS, 0 is STATUS_SUCCESS.
func rtlGetVersionStatus(osvi *osVersionInfoEx) uint32 {
	r1, _, _ := rtlGetVersion.Call(uintptr(unsafe.Pointer(osvi)))
	return uint32(r1)
}
