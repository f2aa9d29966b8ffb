package mktkey

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"quakerfm.dev/market-next/internal/constant"
)

// Extract returns the API key presented in the Authorization header in the form
// of Authorization: Bearer <key>, or an empty string when the request carries
// none. The gate decides whether an empty key is acceptable, not this helper.
func Extract(ctx *fiber.Ctx) string {
	authorization := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authorization, constant.KeyAuthorizationRealm) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorization, constant.KeyAuthorizationRealm))
}
