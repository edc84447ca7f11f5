// Package main runs the Recipebook walkthrough: it builds a small recipe
// collection, filters the quick ones and doubles a recipe.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alchemorsel/recipebook/internal/infrastructure/config"
	"github.com/alchemorsel/recipebook/internal/infrastructure/container"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags, assembles the application and runs the walkthrough.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("recipebook", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a recipebook.yaml config file")
	flags.Int("max-time", 25, "quick recipe threshold in minutes")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("debug", false, "development logging")

	if err := flags.Parse(args); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			return errors.ExitOK
		}
		return errors.ExitUsage
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(container.Params{ConfigPath: *configPath, Flags: flags}),
		container.Module,
		fx.Invoke(func(lc fx.Lifecycle, svc inbound.RecipeService, cfg *config.Config) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return runDemo(stdout, svc, cfg.Catalog.QuickMaxTime)
				},
			})
		}),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(stderr, "recipebook: %v\n", err)
		return errors.ExitCode(err)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "recipebook: failed to stop cleanly: %v\n", err)
		return errors.ExitInternal
	}

	return errors.ExitOK
}
