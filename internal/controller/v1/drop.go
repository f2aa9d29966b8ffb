package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/mktkey"
	"quakerfm.dev/market-next/internal/server/svr"
	"quakerfm.dev/market-next/internal/service"
	"quakerfm.dev/market-next/internal/util/rekuest"
)

type Drop struct {
	fx.In

	AuthService *service.Auth
	DropService *service.Drop
}

func RegisterDrop(v1 *svr.V1, c Drop) {
	v1.Get("/drops", c.GetDrops)
	v1.Post("/drops", c.UpdateDrops)
	v1.Get("/drops/roll", c.RollDrop)
}

//	@Summary	Get the current drop table
//	@Tags		Drop
//	@Produce	json
//	@Success	200	{object}	model.DropTable
//	@Router		/api/v1/drops [GET]
func (c *Drop) GetDrops(ctx *fiber.Ctx) error {
	table, err := c.DropService.GetDropTable(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(table)
}

//	@Summary	Overwrite the drop table
//	@Tags		Drop
//	@Accept		json
//	@Produce	json
//	@Param		Authorization	header		string	true	"Bearer <apiKey>"
//	@Success	200				{object}	model.DropTable
//	@Failure	401				{object}	mkterr.MarketError	"Unknown or missing api key; no mutation occurred"
//	@Failure	400				{object}	mkterr.MarketError	"Malformed drop table"
//	@Router		/api/v1/drops [POST]
func (c *Drop) UpdateDrops(ctx *fiber.Ctx) error {
	if err := c.AuthService.Authorize(ctx.UserContext(), mktkey.Extract(ctx)); err != nil {
		return err
	}

	var request model.DropTable
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	table, err := c.DropService.UpdateDropTable(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(table)
}

//	@Summary	Roll one item from the drop table, weighted by its share of total weight
//	@Tags		Drop
//	@Produce	json
//	@Success	200	{object}	fiber.Map{id=string}
//	@Router		/api/v1/drops/roll [GET]
func (c *Drop) RollDrop(ctx *fiber.Ctx) error {
	id, err := c.DropService.Roll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"id": id,
	})
}
