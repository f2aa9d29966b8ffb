package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"quakerfm.dev/market-next/internal/server/svr"
	"quakerfm.dev/market-next/internal/service"
)

type Status struct {
	fx.In

	HealthService *service.Health
}

func RegisterStatus(v1 *svr.V1, c Status) {
	v1.Get("/uptime", c.GetUptime)
}

//	@Summary	Get seconds since process start
//	@Tags		Status
//	@Produce	json
//	@Success	200	{object}	fiber.Map{uptime=int64}
//	@Router		/api/v1/uptime [GET]
func (c *Status) GetUptime(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"uptime": c.HealthService.Uptime(),
	})
}
