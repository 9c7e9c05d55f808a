package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant_manager/events"
	"restaurant_manager/model"
	"restaurant_manager/store"
)

type ServiceCallStore interface {
	UpsertPending(ctx context.Context, tableNumber int) (*model.ServiceCall, error)
	Pending(ctx context.Context) ([]model.ServiceCall, error)
	Handle(ctx context.Context, id uint, at time.Time) (*model.ServiceCall, error)
}

type ServiceCallService struct {
	calls ServiceCallStore
	pub   events.Publisher
}

func NewServiceCallService(calls ServiceCallStore, pub events.Publisher) *ServiceCallService {
	return &ServiceCallService{calls: calls, pub: pub}
}

// Create bấm chuông gọi nhân viên, mỗi bàn tối đa một call pending.
func (s *ServiceCallService) Create(ctx context.Context, tableNumber int) (*model.ServiceCall, error) {
	call, err := s.calls.UpsertPending(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	s.pub.Publish(events.ServiceCalled, call)
	return call, nil
}

func (s *ServiceCallService) Pending(ctx context.Context) ([]model.ServiceCall, error) {
	return s.calls.Pending(ctx)
}

func (s *ServiceCallService) Handle(ctx context.Context, id uint) (*model.ServiceCall, error) {
	call, err := s.calls.Handle(ctx, id, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("service call %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	s.pub.Publish(events.ServiceHandled, call)
	return call, nil
}
