package main

import (
	"context"

	cr "github.com/cockroachdb/errors"
	"go.uber.org/fx"
)

// run starts app and blocks until ctx is cancelled or app asks to shut down.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return cr.Wrap(err, "start application")
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return cr.Wrap(err, "stop application")
	}
	return nil
}
