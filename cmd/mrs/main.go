package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/cmd/mrs/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
