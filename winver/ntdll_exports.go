//go:build windows

package winver

import (
	"golang.org/x/sys/windows"
)

var (
	modntdll      = windows.NewLazySystemDLL("ntdll.dll")
	rtlGetVersion = modntdll.NewProc("RtlGetVersion")
)
