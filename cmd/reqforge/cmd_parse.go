package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reqforge/reqforge/pkg/defaults"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/reqforge/reqforge/pkg/jsonutil"
	"github.com/reqforge/reqforge/pkg/telemetry"
	"github.com/reqforge/reqforge/pkg/ui"
	"go.opentelemetry.io/otel/attribute"
)

// requestView is the JSON form of a parsed request.
type requestView struct {
	Method  string       `json:"method"`
	Target  string       `json:"target"`
	Version string       `json:"version"`
	Kind    string       `json:"kind"`
	Headers []headerView `json:"headers"`
	Cookies []cookieView `json:"cookies,omitempty"`
	Body    string       `json:"body,omitempty"`
	Raw     string       `json:"raw"`
}

type headerView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type cookieView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newRequestView(req *httpreq.Request) requestView {
	v := requestView{
		Method:  req.Method(),
		Target:  req.TargetURI(),
		Version: req.Version(),
		Kind:    req.Kind().String(),
		Headers: []headerView{},
		Body:    req.Body(),
		Raw:     req.Dump(),
	}
	for _, f := range req.Header().Fields() {
		v.Headers = append(v.Headers, headerView{Name: f.Name, Value: f.Value})
	}
	if req.HasCookie() {
		for _, c := range req.Cookie().Pairs() {
			v.Cookies = append(v.Cookies, cookieView{Name: c.Name, Value: c.Value})
		}
	}
	return v
}

func runParse(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	reqFile := fs.String("r", "", "Raw HTTP request file ('-' for stdin)")
	format := fs.String("format", defaults.FormatConsole, "Output format: console, json")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return defaults.ExitSuccess
		}
		return defaults.ExitUserError
	}
	if *format != defaults.FormatConsole && *format != defaults.FormatJSON {
		return exitCode(stderr, fmt.Errorf("%w: unsupported format %q", errUsage, *format))
	}
	if *noColor {
		ui.SetNoColor(true)
	}

	_, span := telemetry.Tracer().Start(ctx, "parse")
	defer span.End()

	req, err := readRequest(*reqFile, os.Stdin)
	if err != nil {
		span.RecordError(err)
		return exitCode(stderr, err)
	}
	span.SetAttributes(attribute.String("target", req.TargetURI()))

	if *format == defaults.FormatJSON {
		if err := jsonutil.WriteIndent(stdout, newRequestView(req)); err != nil {
			return exitCode(stderr, err)
		}
		return defaults.ExitSuccess
	}
	ui.NewPrinter(stdout).Request(req)
	return defaults.ExitSuccess
}
