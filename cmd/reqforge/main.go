package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/reqforge/reqforge/pkg/defaults"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return defaults.ExitUserError
	}

	switch args[0] {
	case "parse":
		return runParse(ctx, args[1:], stdout, stderr)
	case "mutate", "mutants":
		return runMutate(ctx, args[1:], stdout, stderr)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "%s %s\n", defaults.ToolName, defaults.Version)
		return defaults.ExitSuccess
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return defaults.ExitSuccess
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return defaults.ExitUserError
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%[1]s %[2]s - HTTP request parser and mutant generator

Usage:
  %[1]s parse  -r request.txt [-format console|json]
  %[1]s mutate -r request.txt -payload a,b [-config fuzz.yaml] [flags]
  %[1]s version

Run '%[1]s <command> -h' for command flags.
`, defaults.ToolName, defaults.Version)
}
