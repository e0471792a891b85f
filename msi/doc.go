// Package msi implements the SetVersionInfo custom action for Windows Installer.
//
// The action queries the running Windows version and publishes it to the
// installer session as the VER_WINDOWS_MAJOR, VER_WINDOWS_MINOR and
// VER_WINDOWS_BUILD properties so that they can be used in conditions, e.g.
//
//	<Condition Message="Requires Windows 11">VER_WINDOWS_BUILD >= 22000</Condition>
//
// The exported DLL entry point lives in cmd/msiverca; this package holds the
// session binding and the logic so it can be tested without an installer.
package msi
