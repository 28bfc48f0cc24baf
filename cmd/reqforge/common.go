package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/reqforge/reqforge/pkg/defaults"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/reqforge/reqforge/pkg/iohelper"
	"github.com/reqforge/reqforge/pkg/ui"
)

// errUsage marks failures caused by bad flags or inputs.
var errUsage = errors.New("usage error")

// newLogger builds the CLI logger: text records on w, debug level when
// verbose, every record tagged with the run ID.
func newLogger(w io.Writer, verbose bool, runID string) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).With("run_id", runID)
}

// readRequest loads a raw request from path ("-" reads stdin) and parses it.
func readRequest(path string, stdin io.Reader) (*httpreq.Request, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -r is required", errUsage)
	}
	data, err := iohelper.ReadFile(path, stdin, iohelper.MaxRequestSize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading request: %v", errUsage, err)
	}
	head, body := httpreq.SplitRaw(string(data))
	return httpreq.Parse(head, body)
}

// readPayloadFile returns one payload per non-empty line. Lines are kept
// verbatim apart from the line terminator.
func readPayloadFile(path string) ([]string, error) {
	data, err := iohelper.ReadFile(path, nil, iohelper.MaxPayloadFileSize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading payloads: %v", errUsage, err)
	}
	return iohelper.Lines(data)
}

func validFormat(format string) bool {
	for _, f := range defaults.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// exitCode maps a command error to the process exit code and reports it.
func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return defaults.ExitSuccess
	}
	p := ui.NewPrinter(stderr)
	p.Error(err.Error())

	var perr *httpreq.ParseError
	switch {
	case errors.As(err, &perr):
		return defaults.ExitParseError
	case errors.Is(err, errUsage):
		return defaults.ExitUserError
	default:
		return defaults.ExitInternalError
	}
}
