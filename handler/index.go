package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"restaurant_manager/constants"
	"restaurant_manager/events"
	"restaurant_manager/service"
	"restaurant_manager/store"
	"restaurant_manager/utils"
)

var (
	tableSvc *service.TableService
	orderSvc *service.OrderService
	callSvc  *service.ServiceCallService
	accounts *store.AccountStore
	eventHub *events.Hub
)

// Setup nối store + publisher vào các service mà handler dùng.
func Setup(db *gorm.DB, pub events.Publisher, hub *events.Hub) {
	tables := store.NewTableStore(db)
	orders := store.NewOrderStore(db)
	calls := store.NewServiceCallStore(db)

	tableSvc = service.NewTableService(tables, orders, pub)
	orderSvc = service.NewOrderService(orders, tables, pub)
	callSvc = service.NewServiceCallService(calls, pub)
	accounts = store.NewAccountStore(db)
	eventHub = hub
}

// serviceError dịch lỗi service sang HTTP, message phía client giữ chung chung.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found", err)
	case errors.Is(err, service.ErrInvalidSession):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TABLE_OR_TOKEN, nil)
	case errors.Is(err, service.ErrInvalidState):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATE, nil)
	case errors.Is(err, service.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err)
	}
}
