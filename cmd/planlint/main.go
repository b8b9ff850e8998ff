package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/planlint/internal/cmd"
	"github.com/felixgeelhaar/planlint/internal/errors"
	"github.com/felixgeelhaar/planlint/internal/exitcode"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			exitcode.Exit(exitcode.Interrupted)
		}

		// Findings are already reported through the formatter; everything
		// else gets an Error line.
		if !errors.IsFindings(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
