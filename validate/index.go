package validate

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/utils"
)

var validate = validator.New()

// TableNumberParam đọc param :tableNumber và lưu vào Locals("tableNumber")
func TableNumberParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := strconv.Atoi(c.Params("tableNumber"))
		if err != nil || number < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("tableNumber", number)
		return c.Next()
	}
}

// IdParam đọc param :id và lưu vào Locals("recordId")
func IdParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || id == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("recordId", uint(id))
		return c.Next()
	}
}
