//go:build windows

package support

import (
	"golang.org/x/sys/windows"
)

// MessageBox shows a blocking error dialog on the desktop.
type MessageBox struct{}

func (MessageBox) Notify(title, message string) error {
	ptitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	pmessage, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}

	// HWND_DESKTOP
	_, err = windows.MessageBox(0, pmessage, ptitle, windows.MB_ICONERROR|windows.MB_OK)
	return err
}
