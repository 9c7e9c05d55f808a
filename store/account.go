package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant_manager/model"
)

type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore { return &AccountStore{db: db} }

func (s *AccountStore) ByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	err := s.db.WithContext(ctx).Where("username = ? AND active = ?", username, true).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
