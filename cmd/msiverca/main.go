//go:build windows && (amd64 || arm64)

// Command msiverca builds the custom action DLL:
//
//	go build -buildmode=c-shared -o msiverca.dll ./cmd/msiverca
//
// Author the action in the installer as
//
//	<Binary Id="msiverca" SourceFile="msiverca.dll" />
//	<CustomAction Id="SetVersionInfo" BinaryKey="msiverca" DllEntry="SetVersionInfo" />
//
// and schedule it before any condition that reads the VER_WINDOWS_* properties.
package main

import "C"

import (
	"log/slog"

	"github.com/tekert/go-winver/msi"
	"github.com/tekert/go-winver/winver"
)

// SetVersionInfo is the custom action entry point. hSession is the MSIHANDLE
// passed in by the installer.
//
//export SetVersionInfo
func SetVersionInfo(hSession uint32) uint32 {
	session := msi.Handle(hSession)

	// the handle is only valid for the duration of this call
	prev := slog.Default()
	winver.SetLoggerHandler(msi.NewLogHandler(session, slog.LevelInfo))
	defer slog.SetDefault(prev)

	return msi.SetVersionInfo(session, winver.Query)
}

func main() {}
