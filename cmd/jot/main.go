package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	args := os.Args[1:]
	configureMaxProcs(env.Stderr, slices.Contains(args, "-v") || slices.Contains(args, "--verbose"))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func configureMaxProcs(w io.Writer, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// run dispatches to a command and returns the process exit code.
// args[0] is the program name. Without a known command name the
// arguments belong to create, so "jot buy milk" captures a note.
func run(ctx context.Context, args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	rest := args[1:]
	cmd := ""
	if len(rest) > 0 {
		cmd = rest[0]
	}

	var err error
	ext := ""
	switch cmd {
	case "html":
		ext = "html"
		err = runHTML(rest[1:], env)
	case "pdf":
		ext = "pdf"
		err = runPDF(ctx, rest[1:], env)
	case "doctor":
		return runDoctorCmd(rest[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "jot %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest[1:], env)
	default:
		err = runCreate(ctx, rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "jot: %v%s\n", err, hintFor(err, ext))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
