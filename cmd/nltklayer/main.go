package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root := cli.NewRootCmd(ctx, opts)
	if err := root.ExecuteContext(ctx); err != nil {
		// Failed checks were already reported line by line.
		if !errors.Is(err, domain.ErrChecksFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isVerbose() bool {
	v := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}
