package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"restaurant_manager/model"
)

type ServiceCallStore struct {
	db *gorm.DB
}

func NewServiceCallStore(db *gorm.DB) *ServiceCallStore { return &ServiceCallStore{db: db} }

// UpsertPending giữ tối đa một call pending cho mỗi bàn.
func (s *ServiceCallStore) UpsertPending(ctx context.Context, tableNumber int) (*model.ServiceCall, error) {
	call := model.ServiceCall{TableNumber: tableNumber, Status: model.CallPending}
	err := s.db.WithContext(ctx).
		Where("table_number = ? AND status = ?", tableNumber, model.CallPending).
		FirstOrCreate(&call).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func (s *ServiceCallStore) Pending(ctx context.Context) ([]model.ServiceCall, error) {
	var calls []model.ServiceCall
	err := s.db.WithContext(ctx).
		Where("status = ?", model.CallPending).
		Order("created_at asc").
		Find(&calls).Error
	return calls, err
}

func (s *ServiceCallStore) Handle(ctx context.Context, id uint, at time.Time) (*model.ServiceCall, error) {
	res := s.db.WithContext(ctx).Model(&model.ServiceCall{}).
		Where("id = ? AND status = ?", id, model.CallPending).
		Updates(map[string]any{"status": model.CallHandled, "handled_at": at})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var call model.ServiceCall
	if err := s.db.WithContext(ctx).First(&call, id).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

func (s *ServiceCallStore) PurgeHandledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("status = ? AND handled_at < ?", model.CallHandled, cutoff).
		Delete(&model.ServiceCall{})
	return res.RowsAffected, res.Error
}
