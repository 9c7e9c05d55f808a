package handler

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOrderInput)
	order, err := orderSvc.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func GetPendingOrders(c *fiber.Ctx) error {
	orders, err := orderSvc.ListPending(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetServedOrders(c *fiber.Ctx) error {
	orders, err := orderSvc.ListServed(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetOrders(c *fiber.Ctx) error {
	orders, err := orderSvc.ListAll(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func MarkOrderServed(c *fiber.Ctx) error {
	id := c.Locals("recordId").(uint)
	order, err := orderSvc.MarkServed(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func CompleteOrder(c *fiber.Ctx) error {
	id := c.Locals("recordId").(uint)
	order, err := orderSvc.Complete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func CancelOrder(c *fiber.Ctx) error {
	id := c.Locals("recordId").(uint)
	order, err := orderSvc.Cancel(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrderReports(c *fiber.Ctx) error {
	var query model.ReportQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_BODY, err)
	}
	result, err := orderSvc.Reports(c.UserContext(), query)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func ResetOrders(c *fiber.Ctx) error {
	if err := orderSvc.ResetAll(c.UserContext()); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "All orders reset"})
}
