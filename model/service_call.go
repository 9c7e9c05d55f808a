package model

import "time"

type ServiceCallStatus string

const (
	CallPending ServiceCallStatus = "pending"
	CallHandled ServiceCallStatus = "handled"
)

type ServiceCall struct {
	DTO
	TableNumber int               `gorm:"index" json:"tableNumber"`
	Status      ServiceCallStatus `gorm:"size:20;index" json:"status"`
	HandledAt   *time.Time        `json:"handledAt,omitempty"`
}

type CreateServiceCallInput struct {
	TableNumber int `json:"tableNumber" validate:"required,min=1"`
}
