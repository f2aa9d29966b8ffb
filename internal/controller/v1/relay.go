package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"quakerfm.dev/market-next/internal/server/svr"
	"quakerfm.dev/market-next/internal/service"
	"quakerfm.dev/market-next/internal/util/rekuest"
)

type Relay struct {
	fx.In

	RelayService *service.Relay
}

type RelayLogRequest struct {
	Message string `json:"message" validate:"required"`
}

func RegisterRelay(v1 *svr.V1, c Relay) {
	v1.Post("/log", c.RelayLog)
}

//	@Summary	Relay a market log message to the notification sink
//	@Description	The message is forwarded verbatim. A sink failure never fails
//	@Description	this request; it is only reflected in the forwarded flag.
//	@Tags		Relay
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	fiber.Map{accepted=bool,forwarded=bool}
//	@Router		/api/v1/log [POST]
func (c *Relay) RelayLog(ctx *fiber.Ctx) error {
	var request RelayLogRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	forwarded := c.RelayService.Forward(ctx.UserContext(), request.Message)

	return ctx.JSON(fiber.Map{
		"accepted":  true,
		"forwarded": forwarded,
	})
}
