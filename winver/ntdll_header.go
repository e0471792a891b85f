package winver

// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/wdm/ns-wdm-_osversioninfoexw
//
// typedef struct _OSVERSIONINFOEXW {
// 	ULONG  dwOSVersionInfoSize;
// 	ULONG  dwMajorVersion;
// 	ULONG  dwMinorVersion;
// 	ULONG  dwBuildNumber;
// 	ULONG  dwPlatformId;
// 	WCHAR  szCSDVersion[128];
// 	USHORT wServicePackMajor;
// 	USHORT wServicePackMinor;
// 	USHORT wSuiteMask;
// 	UCHAR  wProductType;
// 	UCHAR  wReserved;
//   } OSVERSIONINFOEXW, *POSVERSIONINFOEXW, *LPOSVERSIONINFOEXW, RTL_OSVERSIONINFOEXW, *PRTL_OSVERSIONINFOEXW;
//
// Size: 284 bytes

// osVersionInfoEx is the RTL_OSVERSIONINFOEXW buffer filled by RtlGetVersion.
// Only the version numbers and the product type are read back.
type osVersionInfoEx struct {
	OSVersionInfoSize uint32
	MajorVersion      uint32
	MinorVersion      uint32
	BuildNumber       uint32
	PlatformId        uint32
	CSDVersion        [128]uint16
	ServicePackMajor  uint16
	ServicePackMinor  uint16
	SuiteMask         uint16
	ProductType       byte
	Reserved          byte
}

// version copies the fields of interest out of a filled record.
func (osvi *osVersionInfoEx) version() Version {
	return Version{
		Major: osvi.MajorVersion,
		Minor: osvi.MinorVersion,
		Build: osvi.BuildNumber,
		Role:  ClassifyRole(osvi.ProductType),
	}
}
