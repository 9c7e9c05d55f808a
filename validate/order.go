package validate

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/service"
	"restaurant_manager/utils"
)

// CreateOrder chặn input hỏng trước khi chạm tới storage: struct tags lo
// field thiếu / số âm / quantity 0, CheckOrderTotal lo tổng tiền.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}

		if err := service.CheckOrderTotal(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
