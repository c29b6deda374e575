package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"keggmod/internal/cmdutil"
)

// Main runs a command with SIGINT/SIGTERM wired to context cancellation and
// exits with its status.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}

	stop()
	os.Exit(code)
}
