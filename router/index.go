package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"restaurant_manager/constants"
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)

	table := v1.Group("/tables", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/:tableNumber/activate", middleware.Protected(), validate.TableNumberParam(), handler.ActivateTable)
	table.Post("/:tableNumber/checkout", middleware.Protected(), validate.TableNumberParam(), handler.StartCheckout)
	table.Post("/:tableNumber/complete-checkout", middleware.Protected(), validate.TableNumberParam(), handler.CompleteCheckout)
	table.Post("/:tableNumber/force-reset", middleware.Protected(), validate.TableNumberParam(), handler.ForceResetTable)
	// khách quét QR xem món của phiên, không cần đăng nhập
	table.Get("/:tableNumber/orders", validate.TableNumberParam(), handler.GetTableOrders)

	order := v1.Group("/orders", logger.New())
	order.Post("/", validate.CreateOrder(), handler.CreateOrder)
	order.Get("/pending", middleware.Protected(), handler.GetPendingOrders)
	order.Get("/served", middleware.Protected(), handler.GetServedOrders)
	order.Get("/reports", middleware.Protected(), middleware.RequireRole(constants.ROLE_MANAGER), handler.GetOrderReports)
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Put("/:id/serve", middleware.Protected(), validate.IdParam(), handler.MarkOrderServed)
	order.Put("/:id/complete", middleware.Protected(), validate.IdParam(), handler.CompleteOrder)
	order.Put("/:id/cancel", middleware.Protected(), validate.IdParam(), handler.CancelOrder)
	order.Post("/reset", middleware.Protected(), middleware.RequireRole(constants.ROLE_SUPERADMIN), handler.ResetOrders)

	call := v1.Group("/service-calls", logger.New())
	call.Post("/", validate.CreateServiceCall(), handler.CreateServiceCall)
	call.Get("/pending", middleware.Protected(), handler.GetPendingServiceCalls)
	call.Put("/:id/handle", middleware.Protected(), validate.IdParam(), handler.HandleServiceCall)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(handler.EventsWebsocket))
}
