package handler

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateServiceCall(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateServiceCallInput)
	call, err := callSvc.Create(c.UserContext(), input.TableNumber)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, call)
}

func GetPendingServiceCalls(c *fiber.Ctx) error {
	calls, err := callSvc.Pending(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, calls)
}

func HandleServiceCall(c *fiber.Ctx) error {
	id := c.Locals("recordId").(uint)
	call, err := callSvc.Handle(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, call)
}
