// Command ver prints the Windows version as major.minor.build.
package main

import (
	"fmt"
	"io"

	"github.com/phuslu/log"

	"github.com/tekert/go-winver/winver"
)

// printVersion writes the version to w. When the query fails nothing is
// written to w.
func printVersion(w io.Writer, logger *log.Logger, query winver.QueryFunc) error {
	v, err := query()
	if err != nil {
		logger.Warn().Err(err).Msg("cannot query windows version")
		return nil
	}
	_, err = fmt.Fprintln(w, v)
	return err
}
