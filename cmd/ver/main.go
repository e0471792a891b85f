//go:build windows

package main

import (
	"os"

	"github.com/phuslu/log"

	"github.com/tekert/go-winver/winver"
)

func main() {
	logger := &log.Logger{
		Level:  log.WarnLevel,
		Writer: &log.ConsoleWriter{Writer: os.Stderr},
	}

	if err := printVersion(os.Stdout, logger, winver.Query); err != nil {
		logger.Error().Err(err).Msg("cannot write version")
	}
}
