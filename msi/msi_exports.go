//go:build windows

package msi

import (
	"golang.org/x/sys/windows"
)

var (
	modmsi                = windows.NewLazySystemDLL("msi.dll")
	procMsiSetPropertyW   = modmsi.NewProc("MsiSetPropertyW")
	procMsiProcessMessage = modmsi.NewProc("MsiProcessMessage")
	procMsiCreateRecord   = modmsi.NewProc("MsiCreateRecord")
	procMsiRecordSetStrW  = modmsi.NewProc("MsiRecordSetStringW")
	procMsiCloseHandle    = modmsi.NewProc("MsiCloseHandle")
)
