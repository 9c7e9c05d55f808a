package handler

import (
	"github.com/gofiber/fiber/v2"

	"restaurant_manager/utils"
)

func GetTables(c *fiber.Ctx) error {
	tables, err := tableSvc.List(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func ActivateTable(c *fiber.Ctx) error {
	number := c.Locals("tableNumber").(int)
	table, err := tableSvc.Activate(c.UserContext(), number)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func StartCheckout(c *fiber.Ctx) error {
	number := c.Locals("tableNumber").(int)
	table, err := tableSvc.StartCheckout(c.UserContext(), number)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func CompleteCheckout(c *fiber.Ctx) error {
	number := c.Locals("tableNumber").(int)
	table, err := tableSvc.CompleteCheckout(c.UserContext(), number)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func ForceResetTable(c *fiber.Ctx) error {
	number := c.Locals("tableNumber").(int)
	table, err := tableSvc.ForceReset(c.UserContext(), number)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

// GetTableOrders: khách xem lại các món pending/served của phiên đang mở
func GetTableOrders(c *fiber.Ctx) error {
	number := c.Locals("tableNumber").(int)
	orders, err := tableSvc.SessionOrders(c.UserContext(), number)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
