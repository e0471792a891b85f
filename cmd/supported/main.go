//go:build windows

package main

import (
	"os"

	"github.com/phuslu/log"

	"github.com/tekert/go-winver/support"
	"github.com/tekert/go-winver/winver"
)

func main() {
	a := &app{
		logger: &log.Logger{
			Level:  log.InfoLevel,
			Writer: &log.ConsoleWriter{Writer: os.Stderr},
		},
		query:    winver.Query,
		notifier: support.MessageBox{},
		revision: winver.BuildRevision,
	}
	os.Exit(a.run(os.Args[1:]))
}
