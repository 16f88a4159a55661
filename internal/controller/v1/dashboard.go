package v1

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/peoplelens/attritiond/internal/model/types"
	"github.com/peoplelens/attritiond/internal/pkg/cachectrl"
	"github.com/peoplelens/attritiond/internal/server/svr"
	"github.com/peoplelens/attritiond/internal/service"
	"github.com/peoplelens/attritiond/internal/util/rekuest"
)

type Dashboard struct {
	fx.In

	DashboardService *service.Dashboard
}

func RegisterDashboard(v1 *svr.V1, c Dashboard) {
	v1.Get("/dashboard", c.GetDashboard)
	v1.Post("/dashboard", c.PostDashboard)
	v1.Get("/kpis", c.GetKPIs)
	v1.Get("/groups/:dimension", c.GetGroups)
	v1.Get("/correlation", c.GetCorrelation)
	v1.Get("/distributions/:column", c.GetDistribution)
}

// tag sets the ETag of a view computed for req.
func (c *Dashboard) tag(ctx *fiber.Ctx, view string, req *types.FilterRequest, extra ...string) error {
	version, err := c.DashboardService.Version(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	cachectrl.SetETag(ctx, append([]string{view, version}, extra...)...)
	return nil
}

func param(ctx *fiber.Ctx, key string) string {
	v := ctx.Params(key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func (c *Dashboard) GetDashboard(ctx *fiber.Ctx) error {
	req, err := rekuest.FilterFromQuery(ctx)
	if err != nil {
		return err
	}
	return c.dashboard(ctx, req)
}

func (c *Dashboard) PostDashboard(ctx *fiber.Ctx) error {
	req, err := rekuest.FilterFromBody(ctx)
	if err != nil {
		return err
	}
	return c.dashboard(ctx, req)
}

func (c *Dashboard) dashboard(ctx *fiber.Ctx, req *types.FilterRequest) error {
	if err := c.tag(ctx, service.ViewDashboard, req); err != nil {
		return err
	}

	d, err := c.DashboardService.Build(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(d)
}

func (c *Dashboard) GetKPIs(ctx *fiber.Ctx) error {
	req, err := rekuest.FilterFromQuery(ctx)
	if err != nil {
		return err
	}
	if err := c.tag(ctx, service.ViewKPIs, req); err != nil {
		return err
	}

	k, err := c.DashboardService.KPIs(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(k)
}

func (c *Dashboard) GetGroups(ctx *fiber.Ctx) error {
	req, err := rekuest.FilterFromQuery(ctx)
	if err != nil {
		return err
	}
	dimension := param(ctx, "dimension")

	g, err := c.DashboardService.Groups(ctx.UserContext(), req, dimension)
	if err != nil {
		return err
	}
	if err := c.tag(ctx, service.ViewGroups, req, dimension); err != nil {
		return err
	}
	return ctx.JSON(g)
}

func (c *Dashboard) GetCorrelation(ctx *fiber.Ctx) error {
	req, err := rekuest.FilterFromQuery(ctx)
	if err != nil {
		return err
	}
	if err := c.tag(ctx, service.ViewCorrelation, req); err != nil {
		return err
	}

	m, err := c.DashboardService.Correlation(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(m)
}

func (c *Dashboard) GetDistribution(ctx *fiber.Ctx) error {
	req, err := rekuest.FilterFromQuery(ctx)
	if err != nil {
		return err
	}
	column := param(ctx, "column")

	d, err := c.DashboardService.Distribution(ctx.UserContext(), req, column)
	if err != nil {
		return err
	}
	if err := c.tag(ctx, service.ViewDistribution, req, column); err != nil {
		return err
	}
	return ctx.JSON(d)
}
