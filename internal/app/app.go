package app

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/peoplelens/attritiond/internal/app/appconfig"
	"github.com/peoplelens/attritiond/internal/app/appcontext"
	"github.com/peoplelens/attritiond/internal/controller"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/infra"
	"github.com/peoplelens/attritiond/internal/pkg/logger"
	"github.com/peoplelens/attritiond/internal/server"
	"github.com/peoplelens/attritiond/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Domain
		employee.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),
		fx.Invoke(infra.Tracing),
	}

	if ctx.Env == appcontext.EnvServer {
		baseOpts = append(baseOpts,
			// A dataset that cannot be loaded keeps the server from starting.
			fx.Invoke(preloadDataset),

			// Servers
			server.Module(),

			// Controllers
			controller.Module(),

			fx.Invoke(infra.Datadog),
		)
	}

	baseOpts = append(baseOpts,
		// fx Extra Options
		fx.StartTimeout(conf.DatasetLoadTimeout()),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5*time.Minute),
	)

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}

func preloadDataset(loader *employee.Loader, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := loader.Load(ctx)
			return err
		},
	})
}
