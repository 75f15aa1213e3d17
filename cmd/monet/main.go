package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"monet/internal/cli"
	"monet/internal/config"
	"monet/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it with args
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	root := newRoot(config.NewLoader())
	root.Command().SetArgs(args)
	root.Command().SetIn(in)
	root.Command().SetOut(out)
	return root.ExecuteContext(ctx)
}

func newRoot(loader *config.Loader) *cli.RootCommand {
	root := cli.NewRootCommand(loader, config.CreateStore)
	root.AddSessionCommand("tui", "Open the full-screen interface", tui.Run)
	return root
}
