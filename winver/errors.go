package winver

import "fmt"

// StatusError is the NTSTATUS returned by a failed RtlGetVersion call.
// The value is passed through as-is; this package does not interpret it.
type StatusError uint32

func (e StatusError) Error() string {
	return fmt.Sprintf("RtlGetVersion failed with status 0x%08X", uint32(e))
}

// Code returns the raw status code.
func (e StatusError) Code() uint32 {
	return uint32(e)
}
