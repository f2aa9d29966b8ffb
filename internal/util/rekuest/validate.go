package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"quakerfm.dev/market-next/internal/pkg/mkterr"
)

var (
	Validate = validator.New()

	entr ut.Translator
)

func init() {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	entr, _ = uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(entr),
		})
	}
	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return mkterr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if errs := validateStruct(dest); errs != nil {
		return mkterr.NewInvalidViolations(errs)
	}

	return nil
}
