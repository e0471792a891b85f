//go:build windows

package winver

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// BuildRevision returns the update build revision (UBR), the fourth component
// shown by `cmd /c ver`, e.g. 3570 in "10.0.19045.3570".
// RtlGetVersion does not report it, so it is read from the registry.
func BuildRevision() (uint32, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return 0, fmt.Errorf("open `CurrentVersion` registry key: %w", err)
	}
	defer k.Close()

	ubr, _, err := k.GetIntegerValue("UBR")
	if err != nil {
		return 0, fmt.Errorf("read `UBR` from registry: %w", err)
	}
	return uint32(ubr), nil
}
