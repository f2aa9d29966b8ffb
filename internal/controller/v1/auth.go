package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"quakerfm.dev/market-next/internal/server/svr"
	"quakerfm.dev/market-next/internal/service"
	"quakerfm.dev/market-next/internal/util/rekuest"
)

type Auth struct {
	fx.In

	AuthService *service.Auth
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required"`
}

func RegisterAuth(v1 *svr.V1, c Auth) {
	v1.Post("/auth/login", c.Login)
}

//	@Summary	Log in with the fixed admin credentials
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	fiber.Map{apiKey=string}
//	@Failure	401	{object}	mkterr.MarketError	"Invalid credentials"
//	@Router		/api/v1/auth/login [POST]
func (c *Auth) Login(ctx *fiber.Ctx) error {
	var request LoginRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	key, err := c.AuthService.Login(ctx.UserContext(), request.Username, request.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"apiKey": key,
	})
}
