package validate

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateServiceCall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceCallInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
