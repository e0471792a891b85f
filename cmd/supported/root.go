// Command supported exits with status 1 when the running Windows version is
// below the supported minimum, showing an error dialog unless --quiet is given.
// It is meant to run from a setup bootstrapper before the installer UI starts.
//
// Build it for the GUI subsystem so no console window opens:
//
//	go build -ldflags -H=windowsgui ./cmd/supported
package main

import (
	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/tekert/go-winver/support"
	"github.com/tekert/go-winver/winver"
)

// ExitUsage is returned for invalid command line arguments.
const ExitUsage = 2

type app struct {
	logger   *log.Logger
	query    winver.QueryFunc
	notifier support.Notifier
	// revision is optional, it only adds the UBR to the log
	revision func() (uint32, error)

	exitCode int
}

func (a *app) newRootCommand() *cobra.Command {
	var quiet bool

	command := &cobra.Command{
		Use:           "supported",
		Short:         "Check that this version of Windows is supported.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			winver.SetLoggerHandler(a.logger.Slog().Handler())
		},
		Run: func(cmd *cobra.Command, args []string) {
			a.exitCode = a.check(quiet)
		},
	}

	command.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show a dialog when the version is not supported")

	return command
}

func (a *app) check(quiet bool) int {
	if a.revision != nil {
		if ubr, err := a.revision(); err == nil {
			a.logger.Debug().Uint32("ubr", ubr).Msg("build revision")
		}
	}

	gate := &support.Gate{
		Policy:   support.DefaultPolicy(),
		Query:    a.query,
		Notifier: a.notifier,
		Quiet:    quiet,
	}
	return gate.Run()
}

// run executes the command line and returns the process exit code.
func (a *app) run(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	command := a.newRootCommand()
	command.SetArgs(args)

	if err := command.Execute(); err != nil {
		a.logger.Error().Err(err).Msg("invalid arguments")
		return ExitUsage
	}
	return a.exitCode
}
