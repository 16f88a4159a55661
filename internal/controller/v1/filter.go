package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/peoplelens/attritiond/internal/pkg/cachectrl"
	"github.com/peoplelens/attritiond/internal/server/svr"
	"github.com/peoplelens/attritiond/internal/service"
)

type Filter struct {
	fx.In

	DashboardService *service.Dashboard
}

func RegisterFilter(v1 *svr.V1, c Filter) {
	v1.Get("/filters", c.GetFilterOptions)
}

// GetFilterOptions lists the selectable departments and genders, the age bounds
// and the default selection.
func (c *Filter) GetFilterOptions(ctx *fiber.Ctx) error {
	version, err := c.DashboardService.Version(ctx.UserContext(), nil)
	if err != nil {
		return err
	}
	cachectrl.SetETag(ctx, "filters", version)

	options, err := c.DashboardService.FilterOptions(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(options)
}
