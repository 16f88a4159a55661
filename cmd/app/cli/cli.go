package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/peoplelens/attritiond/internal/app"
	"github.com/peoplelens/attritiond/internal/app/appcontext"
)

// Start builds the CLI dependency graph and starts it, populating module's targets.
func Start(ctx context.Context, module fx.Option) (*fx.App, error) {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Deps starts the CLI dependency graph and returns the populated T.
func Deps[T any](ctx context.Context) (T, func(), error) {
	var deps T
	a, err := Start(ctx, fx.Populate(&deps))
	if err != nil {
		return deps, nil, err
	}
	return deps, func() { _ = a.Stop(context.Background()) }, nil
}
