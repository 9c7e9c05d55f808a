package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant_manager/model"
)

type TableStore struct {
	db *gorm.DB
}

func NewTableStore(db *gorm.DB) *TableStore { return &TableStore{db: db} }

func (s *TableStore) All(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table
	err := s.db.WithContext(ctx).Order("number asc").Find(&tables).Error
	return tables, err
}

func (s *TableStore) ByNumber(ctx context.Context, number int) (*model.Table, error) {
	var table model.Table
	err := s.db.WithContext(ctx).Where("number = ?", number).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateIfStatus ghi toàn bộ field session khi status hiện tại đúng như expect.
// RowsAffected = 0 thì phân biệt NotFound / StaleState bằng một lần đọc lại.
func (s *TableStore) UpdateIfStatus(ctx context.Context, number int, expect model.TableStatus, session model.TableSession) (*model.Table, error) {
	res := s.db.WithContext(ctx).Model(&model.Table{}).
		Where("number = ? AND status = ?", number, expect).
		Updates(sessionFields(session))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.ByNumber(ctx, number); err != nil {
			return nil, err
		}
		return nil, ErrStaleState
	}
	return s.ByNumber(ctx, number)
}

// Reset đưa bàn về available bất kể trạng thái hiện tại.
func (s *TableStore) Reset(ctx context.Context, number int) (*model.Table, error) {
	res := s.db.WithContext(ctx).Model(&model.Table{}).
		Where("number = ?", number).
		Updates(sessionFields(model.TableSession{Status: model.TableAvailable}))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.ByNumber(ctx, number)
}

// map để ghi đè cả giá trị zero (token rỗng, tổng 0)
func sessionFields(session model.TableSession) map[string]any {
	refs := session.OrderRefs
	if refs == nil {
		refs = model.UintList{}
	}
	return map[string]any{
		"status":        session.Status,
		"session_token": session.SessionToken,
		"session_url":   session.SessionURL,
		"session_qr":    session.SessionQR,
		"total_amount":  session.TotalAmount,
		"order_refs":    refs,
	}
}
