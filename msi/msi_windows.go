//go:build windows

package msi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	// INSTALLMESSAGE_INFO, written to the log without any UI.
	installMessageInfo = 0x04000000

	messageTemplate = "[1]"
)

// Handle is an MSIHANDLE to the running install session, as passed to a
// custom action entry point. It is owned by the installer and must not be closed.
type Handle uint32

// UINT MsiSetPropertyW(
//   [in] MSIHANDLE hInstall,
//   [in] LPCWSTR   szName,
//   [in] LPCWSTR   szValue
// );

// SetProperty sets a session property. An empty value removes the property.
func (h Handle) SetProperty(name, value string) error {
	pname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	pvalue, err := windows.UTF16PtrFromString(value)
	if err != nil {
		return err
	}

	r1, _, _ := procMsiSetPropertyW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(pname)),
		uintptr(unsafe.Pointer(pvalue)))
	if r1 != 0 {
		return syscall.Errno(r1)
	}
	return nil
}

// LogMessage writes text to the installer log with INSTALLMESSAGE_INFO.
func (h Handle) LogMessage(text string) error {
	rec, err := newMessageRecord(text)
	if err != nil {
		return err
	}
	defer procMsiCloseHandle.Call(rec)

	// returns -1 on error, 0 when there is no action taken (logging disabled)
	r1, _, _ := procMsiProcessMessage.Call(uintptr(h), installMessageInfo, rec)
	if int32(r1) == -1 {
		return windows.ERROR_INVALID_HANDLE
	}
	return nil
}

// newMessageRecord returns a record that formats to text verbatim. Field 0 is
// a format template, so text goes into field 1 where brackets are not expanded.
// The caller closes the record.
func newMessageRecord(text string) (uintptr, error) {
	ptemplate, err := windows.UTF16PtrFromString(messageTemplate)
	if err != nil {
		return 0, err
	}
	ptext, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return 0, err
	}

	rec, _, _ := procMsiCreateRecord.Call(1)
	if rec == 0 {
		return 0, windows.ERROR_OUTOFMEMORY
	}

	for field, p := range [...]*uint16{ptemplate, ptext} {
		if r1, _, _ := procMsiRecordSetStrW.Call(rec, uintptr(field), uintptr(unsafe.Pointer(p))); r1 != 0 {
			procMsiCloseHandle.Call(rec)
			return 0, syscall.Errno(r1)
		}
	}
	return rec, nil
}
