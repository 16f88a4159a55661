package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/peoplelens/attritiond/cmd/app/cli/report"
	"github.com/peoplelens/attritiond/cmd/app/server"
	"github.com/peoplelens/attritiond/internal/pkg/bininfo"
)

// New returns the attritiond command line app. Repeated slice flags are never split
// on commas, so a value like "Sales, Marketing" stays one department.
func New() *cli.App {
	return &cli.App{
		Name:        "attritiond",
		Usage:       "employee attrition dashboard backend",
		Description: "Loads an employee attrition table once and serves filtered KPIs, grouped counts, distributions and correlations. Built with Go, fiber, gota and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			report.Command(),
		},
		DisableSliceFlagSeparator: true,
	}
}

func Run() {
	app := New()
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
