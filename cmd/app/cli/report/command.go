package report

import (
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	cliapp "github.com/peoplelens/attritiond/cmd/app/cli"
	"github.com/peoplelens/attritiond/internal/core/employee"
	"github.com/peoplelens/attritiond/internal/model/types"
	"github.com/peoplelens/attritiond/internal/service"
	"github.com/peoplelens/attritiond/internal/util/rekuest"
)

type CommandDeps struct {
	fx.In

	Loader           *employee.Loader
	DashboardService *service.Dashboard
}

type options struct {
	Format string `json:"format" validate:"required,caseinsensitiveoneof=table json"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "print the dashboard for a filter selection",
		UsageText: "attritiond report [--department NAME]... [--gender NAME]... [--age-min N] [--age-max N] [--format table|json]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "department",
				Usage: "select a department, repeatable and taken verbatim including commas; pass an empty value to select none",
			},
			&cli.StringSliceFlag{
				Name:  "gender",
				Usage: "select a gender, repeatable and taken verbatim including commas; pass an empty value to select none",
			},
			&cli.IntFlag{
				Name:  "age-min",
				Usage: "lower age bound, clamped to the observed ages",
			},
			&cli.IntFlag{
				Name:  "age-max",
				Usage: "upper age bound, clamped to the observed ages",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: table or json",
				Value: FormatTable,
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	opts := options{Format: strings.ToLower(c.String("format"))}
	if err := rekuest.Struct(opts); err != nil {
		return cli.Exit(err, 2)
	}

	deps, stop, err := cliapp.Deps[CommandDeps](c.Context)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer stop()

	if _, err := deps.Loader.Load(c.Context); err != nil {
		return cli.Exit(err, 1)
	}

	d, err := deps.DashboardService.Build(c.Context, requestFromFlags(c))
	if err != nil {
		return cli.Exit(err, 1)
	}

	return Render(c.App.Writer, opts.Format, d)
}

func requestFromFlags(c *cli.Context) *types.FilterRequest {
	req := &types.FilterRequest{}

	multi := func(name string) []string {
		if !c.IsSet(name) {
			return nil
		}
		return lo.Filter(lo.Map(c.StringSlice(name), func(v string, _ int) string {
			return strings.TrimSpace(v)
		}), func(v string, _ int) bool {
			return v != ""
		})
	}
	req.Departments = multi("department")
	req.Genders = multi("gender")

	if c.IsSet("age-min") || c.IsSet("age-max") {
		req.AgeRange = &types.AgeRangeRequest{}
		if c.IsSet("age-min") {
			req.AgeRange.Min = null.IntFrom(int64(c.Int("age-min")))
		}
		if c.IsSet("age-max") {
			req.AgeRange.Max = null.IntFrom(int64(c.Int("age-max")))
		}
	}
	return req
}
