package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/0xrawsec/toast"
	"github.com/phuslu/log"

	"github.com/tekert/go-winver/support"
	"github.com/tekert/go-winver/winver"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(title, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

func newTestApp(t *testing.T, v winver.Version, err error) (*app, *recordingNotifier) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	n := &recordingNotifier{}
	return &app{
		logger:   &log.Logger{Level: log.DebugLevel, Writer: &log.IOWriter{Writer: &bytes.Buffer{}}},
		query:    func() (winver.Version, error) { return v, err },
		notifier: n,
	}, n
}

func TestSupported(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		version winver.Version
		exit    int
		dialogs int
	}{
		{"workstation 10", nil, winver.Version{Major: 10, Build: 19045, Role: winver.RoleWorkstation}, 1, 1},
		{"workstation 10 quiet", []string{"--quiet"}, winver.Version{Major: 10, Role: winver.RoleWorkstation}, 1, 0},
		{"workstation 10 short quiet", []string{"-q"}, winver.Version{Major: 10, Role: winver.RoleWorkstation}, 1, 0},
		{"workstation 11", nil, winver.Version{Major: 11, Role: winver.RoleWorkstation}, 0, 0},
		{"server 6.2", nil, winver.Version{Major: 6, Minor: 2, Role: winver.RoleServer}, 1, 1},
		{"server 6.3", nil, winver.Version{Major: 6, Minor: 3, Role: winver.RoleServer}, 0, 0},
		{"server 10", []string{"-q"}, winver.Version{Major: 10, Role: winver.RoleServer}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := toast.FromT(t)

			a, n := newTestApp(t, tc.version, nil)
			tt.Assert(a.run(tc.args) == tc.exit)
			tt.Assert(len(n.messages) == tc.dialogs, "got %v", n.messages)
		})
	}
}

func TestSupportedQueryFailure(t *testing.T) {
	for _, args := range [][]string{nil, {"-q"}} {
		tt := toast.FromT(t)

		a, n := newTestApp(t, winver.Version{}, winver.StatusError(0xC0000001))
		tt.Assert(a.run(args) == support.ExitSupported)
		tt.Assert(len(n.messages) == 0)
	}
}

func TestSupportedUsage(t *testing.T) {
	tt := toast.FromT(t)

	a, _ := newTestApp(t, winver.Version{Major: 11, Role: winver.RoleWorkstation}, nil)
	tt.Assert(a.run([]string{"--verbose"}) == ExitUsage)

	a, _ = newTestApp(t, winver.Version{Major: 11, Role: winver.RoleWorkstation}, nil)
	tt.Assert(a.run([]string{"extra"}) == ExitUsage)
}

func TestSupportedLogsRevision(t *testing.T) {
	tt := toast.FromT(t)

	var buf bytes.Buffer
	a, _ := newTestApp(t, winver.Version{Major: 11, Role: winver.RoleWorkstation}, nil)
	a.logger = &log.Logger{Level: log.DebugLevel, Writer: &log.IOWriter{Writer: &buf}}
	a.revision = func() (uint32, error) { return 3570, nil }

	tt.Assert(a.run(nil) == 0)
	tt.Assert(bytes.Contains(buf.Bytes(), []byte(`"ubr":3570`)), "got %q", buf.String())
}
