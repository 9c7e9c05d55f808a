package model

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	MenuItemID    string         `json:"menuItemId"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	Quantity      int            `json:"quantity"`
	Customization map[string]any `json:"customization,omitempty"`
	Subtotal      float64        `json:"subtotal"`
}

type Order struct {
	DTO
	TableNumber int         `gorm:"index:idx_orders_table_status" json:"tableNumber"`
	Items       OrderItems  `gorm:"type:jsonb" json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `gorm:"size:20;index:idx_orders_table_status;index" json:"status"`
	Token       string      `gorm:"size:64;index" json:"token"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

type OrderItemInput struct {
	MenuItemID    string         `json:"menuItemId" validate:"required"`
	Name          string         `json:"name" validate:"required"`
	Price         float64        `json:"price" validate:"min=0"`
	Quantity      int            `json:"quantity" validate:"required,min=1"`
	Customization map[string]any `json:"customization"`
	Subtotal      float64        `json:"subtotal" validate:"min=0"`
}

type CreateOrderInput struct {
	TableNumber int              `json:"tableNumber" validate:"required,min=1"`
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Total       float64          `json:"total" validate:"min=0"`
	Token       string           `json:"token" validate:"required"`
}

type ReportQuery struct {
	Period    string `json:"period" query:"period"`
	StartDate string `json:"startDate" query:"startDate"`
	EndDate   string `json:"endDate" query:"endDate"`
}

type ReportSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type ReportResult struct {
	Orders  []Order       `json:"orders"`
	Summary ReportSummary `json:"summary"`
}
