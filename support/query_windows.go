//go:build windows

package support

import "github.com/tekert/go-winver/winver"

func init() {
	defaultQuery = winver.Query
}
