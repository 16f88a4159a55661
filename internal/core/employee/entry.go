package employee

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("employee",
		fx.Provide(
			NewSource,
			NewLoader,
		),
	)
}
