package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"quakerfm.dev/market-next/internal/server/svr"
	"quakerfm.dev/market-next/internal/service"
)

type Price struct {
	fx.In

	PriceService *service.Price
}

func RegisterPrice(v1 *svr.V1, c Price) {
	v1.Get("/prices", c.GetPrices)
}

//	@Summary	Get current market prices
//	@Description	Reading prices advances the persisted random walk: the response
//	@Description	becomes the base for the next read, so this call is not idempotent.
//	@Tags		Price
//	@Produce	json
//	@Success	200	{object}	model.PriceTable
//	@Router		/api/v1/prices [GET]
func (c *Price) GetPrices(ctx *fiber.Ctx) error {
	table, err := c.PriceService.Advance(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(table)
}
