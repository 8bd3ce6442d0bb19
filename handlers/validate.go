package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate decodes the JSON body into target and runs its
// validation tags.
func parseAndValidate(c *fiber.Ctx, target any) error {
	if err := c.BodyParser(target); err != nil {
		return errors.New("request body is not valid JSON")
	}
	if err := validate.Struct(target); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			field := invalid[0]
			return errors.New("invalid value for field " + field.Field())
		}
		return err
	}
	return nil
}
