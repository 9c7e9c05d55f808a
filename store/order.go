package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"restaurant_manager/model"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore { return &OrderStore{db: db} }

func (s *OrderStore) Create(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *OrderStore) ByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ByStatus trả danh sách theo thứ tự tạo, cũ nhất trước (hàng chờ bếp).
func (s *OrderStore) ByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Where("status = ?", status).Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (s *OrderStore) All(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// BySession lọc order theo phiên (tableNumber, token) và các status truyền vào.
func (s *OrderStore) BySession(ctx context.Context, tableNumber int, token string, statuses []model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Where("table_number = ? AND token = ? AND status IN ?", tableNumber, token, statuses).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateIfStatus chuyển status khi status hiện tại nằm trong expect.
func (s *OrderStore) UpdateIfStatus(ctx context.Context, id uint, expect []model.OrderStatus, next model.OrderStatus, completedAt *time.Time) (*model.Order, error) {
	fields := map[string]any{"status": next}
	if completedAt != nil {
		fields["completed_at"] = completedAt
	}
	res := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status IN ?", id, expect).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.ByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrStaleState
	}
	return s.ByID(ctx, id)
}

// CompleteServed chốt mọi order served của phiên thành completed trong một UPDATE.
func (s *OrderStore) CompleteServed(ctx context.Context, tableNumber int, token string, at time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).
		Where("table_number = ? AND token = ? AND status = ?", tableNumber, token, model.OrderServed).
		Updates(map[string]any{"status": model.OrderCompleted, "completed_at": at}).Error
}

// CompletedBetween phục vụ báo cáo, from/to nil nghĩa là không chặn đầu đó.
func (s *OrderStore) CompletedBetween(ctx context.Context, from, to *time.Time) ([]model.Order, error) {
	q := s.db.WithContext(ctx).Where("status = ?", model.OrderCompleted)
	if from != nil {
		q = q.Where("completed_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("completed_at <= ?", *to)
	}
	var orders []model.Order
	err := q.Order("completed_at desc").Find(&orders).Error
	return orders, err
}

func (s *OrderStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&model.Order{}).Error
}
