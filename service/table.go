package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant_manager/events"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/store"
)

// TableStore và OrderStore khai báo ở phía dùng, bản gorm nằm trong package store.
type TableStore interface {
	All(ctx context.Context) ([]model.Table, error)
	ByNumber(ctx context.Context, number int) (*model.Table, error)
	UpdateIfStatus(ctx context.Context, number int, expect model.TableStatus, session model.TableSession) (*model.Table, error)
	Reset(ctx context.Context, number int) (*model.Table, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
	ByID(ctx context.Context, id uint) (*model.Order, error)
	ByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	All(ctx context.Context) ([]model.Order, error)
	BySession(ctx context.Context, tableNumber int, token string, statuses []model.OrderStatus) ([]model.Order, error)
	UpdateIfStatus(ctx context.Context, id uint, expect []model.OrderStatus, next model.OrderStatus, completedAt *time.Time) (*model.Order, error)
	CompleteServed(ctx context.Context, tableNumber int, token string, at time.Time) error
	CompletedBetween(ctx context.Context, from, to *time.Time) ([]model.Order, error)
	DeleteAll(ctx context.Context) error
}

type TableService struct {
	tables TableStore
	orders OrderStore
	pub    events.Publisher
}

func NewTableService(tables TableStore, orders OrderStore, pub events.Publisher) *TableService {
	return &TableService{tables: tables, orders: orders, pub: pub}
}

func (s *TableService) List(ctx context.Context) ([]model.Table, error) {
	return s.tables.All(ctx)
}

// Activate mở phiên gọi món: sinh token + QR rồi chuyển available -> occupied
// bằng một update có điều kiện.
func (s *TableService) Activate(ctx context.Context, number int) (*model.Table, error) {
	artifacts, err := helper.NewSessionArtifacts(number)
	if err != nil {
		return nil, fmt.Errorf("generate session artifacts: %w", err)
	}

	table, err := s.tables.UpdateIfStatus(ctx, number, model.TableAvailable, model.TableSession{
		Status:       model.TableOccupied,
		SessionToken: artifacts.Token,
		SessionURL:   artifacts.URL,
		SessionQR:    artifacts.QRImage,
	})
	if err != nil {
		return nil, s.mapTableErr(err, number, "activate", model.TableAvailable)
	}

	s.pub.Publish(events.TableActivated, tablePayload(number))
	return table, nil
}

// StartCheckout chụp lại các order served của phiên hiện tại rồi chuyển
// occupied -> checkout. Order được served sau thời điểm chụp sẽ nằm ngoài
// aggregate cho tới khi nhân viên bấm checkout lại.
func (s *TableService) StartCheckout(ctx context.Context, number int) (*model.Table, error) {
	table, err := s.tables.ByNumber(ctx, number)
	if err != nil {
		return nil, s.mapTableErr(err, number, "startCheckout", model.TableOccupied)
	}
	if table.Status != model.TableOccupied {
		log.Printf("table %d: startCheckout rejected, status=%s expected=%s", number, table.Status, model.TableOccupied)
		return nil, ErrInvalidState
	}

	served, err := s.orders.BySession(ctx, number, table.SessionToken, []model.OrderStatus{model.OrderServed})
	if err != nil {
		return nil, err
	}

	var total float64
	refs := model.UintList{}
	for _, order := range served {
		total += order.Total
		refs = append(refs, order.ID)
	}

	updated, err := s.tables.UpdateIfStatus(ctx, number, model.TableOccupied, model.TableSession{
		Status:       model.TableCheckout,
		SessionToken: table.SessionToken,
		SessionURL:   table.SessionURL,
		SessionQR:    table.SessionQR,
		TotalAmount:  total,
		OrderRefs:    refs,
	})
	if err != nil {
		return nil, s.mapTableErr(err, number, "startCheckout", model.TableOccupied)
	}

	s.pub.Publish(events.TableCheckoutStarted, tablePayload(number))
	return updated, nil
}

// CompleteCheckout chốt order served thành completed trước, reset bàn sau.
// Nếu chết giữa chừng thì gọi lại là xong: bước một query theo status nên
// chạy lại không đổi gì, bước hai vẫn đưa bàn về available.
func (s *TableService) CompleteCheckout(ctx context.Context, number int) (*model.Table, error) {
	table, err := s.tables.ByNumber(ctx, number)
	if err != nil {
		return nil, s.mapTableErr(err, number, "completeCheckout", model.TableCheckout)
	}
	if table.Status != model.TableCheckout {
		log.Printf("table %d: completeCheckout rejected, status=%s expected=%s", number, table.Status, model.TableCheckout)
		return nil, ErrInvalidState
	}

	if err := s.orders.CompleteServed(ctx, number, table.SessionToken, time.Now()); err != nil {
		return nil, err
	}

	updated, err := s.tables.UpdateIfStatus(ctx, number, model.TableCheckout, model.TableSession{
		Status: model.TableAvailable,
	})
	if err != nil {
		return nil, s.mapTableErr(err, number, "completeCheckout", model.TableCheckout)
	}

	s.pub.Publish(events.TableCheckoutCompleted, tablePayload(number))
	return updated, nil
}

// ForceReset là lối thoát cho nhân viên: về available từ bất kỳ trạng thái nào,
// không đụng tới status của các order.
func (s *TableService) ForceReset(ctx context.Context, number int) (*model.Table, error) {
	table, err := s.tables.Reset(ctx, number)
	if err != nil {
		return nil, s.mapTableErr(err, number, "forceReset", "")
	}

	s.pub.Publish(events.TableForceReset, tablePayload(number))
	return table, nil
}

// SessionOrders trả order pending/served của phiên đang mở trên bàn.
func (s *TableService) SessionOrders(ctx context.Context, number int) ([]model.Order, error) {
	table, err := s.tables.ByNumber(ctx, number)
	if err != nil {
		return nil, s.mapTableErr(err, number, "sessionOrders", "")
	}
	if table.SessionToken == "" {
		return []model.Order{}, nil
	}
	return s.orders.BySession(ctx, number, table.SessionToken,
		[]model.OrderStatus{model.OrderPending, model.OrderServed})
}

func (s *TableService) mapTableErr(err error, number int, op string, expect model.TableStatus) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("table %d: %w", number, ErrNotFound)
	case errors.Is(err, store.ErrStaleState):
		log.Printf("table %d: %s lost the status race, expected=%s", number, op, expect)
		return ErrInvalidState
	default:
		return err
	}
}

func tablePayload(number int) map[string]any {
	return map[string]any{"tableNumber": number}
}
