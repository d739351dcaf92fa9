package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adjacent-hq/adjnews-go/internal/cli"
	"github.com/adjacent-hq/adjnews-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "adjnews: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer logger.Close()

	return cli.NewRootCmd().ExecuteContext(ctx)
}
