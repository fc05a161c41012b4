package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"kanban/internal/cli"
	"kanban/internal/config"
)

func main() {
	// Pick the settings database by environment
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(config.NewLoader(), factory.CreateRepository)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
