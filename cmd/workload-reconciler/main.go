package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/skillcoder/workload-reconciler/internal/adapters/inbound/cli"
	"github.com/skillcoder/workload-reconciler/internal/app"
	"github.com/skillcoder/workload-reconciler/internal/config"
	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
)

func main() {
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()

	factory := func(logger *slog.Logger, cfg *config.Config) (cli.Application, error) {
		application, err := app.New(logger, cfg, signals, os.Stderr)
		if err != nil {
			return nil, err
		}

		return application, nil
	}

	root := cli.NewRootCmd(factory, os.Stdout, os.Stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
