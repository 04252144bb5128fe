package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reoring/c3tconv/cmd/c3tconv/commands"
	"github.com/reoring/c3tconv/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "c3tconv:", err)
	}
	os.Exit(app.ExitCode(err))
}
