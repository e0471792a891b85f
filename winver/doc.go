// Package winver reports the version of the running Windows installation.
//
// The version is read with ntdll!RtlGetVersion, which unlike GetVersionEx is not
// subject to application manifest shims, so the numbers returned are the real ones.
// Each call to [Query] issues a fresh native call; nothing is cached.
//
// Basic usage:
//
//	v, err := winver.Query()
//	if err != nil {
//	    var status winver.StatusError
//	    if errors.As(err, &status) {
//	        log.Printf("RtlGetVersion returned 0x%08X", status.Code())
//	    }
//	    return
//	}
//	fmt.Println(v) // 10.0.19045
//	if v.Role == winver.RoleServer {
//	    // ...
//	}
package winver
