package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jinzhu/copier"

	"restaurant_manager/events"
	"restaurant_manager/model"
	"restaurant_manager/store"
)

type OrderService struct {
	orders OrderStore
	tables TableStore
	pub    events.Publisher
}

func NewOrderService(orders OrderStore, tables TableStore, pub events.Publisher) *OrderService {
	return &OrderService{orders: orders, tables: tables, pub: pub}
}

// Create nhận order từ khách: kiểm tra tổng tiền, sau đó đối chiếu phiên.
// Mọi trường hợp sai phiên (bàn không tồn tại, chưa mở, token lệch) trả về
// cùng một lỗi, không ghi gì vào record bàn.
func (s *OrderService) Create(ctx context.Context, input model.CreateOrderInput) (*model.Order, error) {
	if err := CheckOrderTotal(input); err != nil {
		return nil, err
	}

	table, err := s.tables.ByNumber(ctx, input.TableNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("order intake: table %d does not exist", input.TableNumber)
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if table.Status != model.TableOccupied || table.SessionToken != input.Token {
		log.Printf("order intake: table %d binding rejected, status=%s", input.TableNumber, table.Status)
		return nil, ErrInvalidSession
	}

	var items model.OrderItems
	if err := copier.Copy(&items, &input.Items); err != nil {
		return nil, fmt.Errorf("copy order items: %w", err)
	}

	order := &model.Order{
		TableNumber: input.TableNumber,
		Items:       items,
		Total:       input.Total,
		Status:      model.OrderPending,
		Token:       input.Token,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.pub.Publish(events.OrderCreated, order)
	return order, nil
}

// CheckOrderTotal bắt buộc total khớp tổng subtotal ngay tại intake,
// checkout về sau chỉ cộng field total chứ không tính lại từng món.
func CheckOrderTotal(input model.CreateOrderInput) error {
	var sum float64
	for _, item := range input.Items {
		sum += item.Subtotal
	}
	if math.Abs(sum-input.Total) > 0.001 {
		return fmt.Errorf("%w: total %.2f does not match items sum %.2f", ErrValidation, input.Total, sum)
	}
	return nil
}

func (s *OrderService) MarkServed(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orders.UpdateIfStatus(ctx, id,
		[]model.OrderStatus{model.OrderPending}, model.OrderServed, nil)
	if err != nil {
		return nil, s.mapOrderErr(err, id, "serve")
	}
	s.pub.Publish(events.OrderServed, order)
	return order, nil
}

func (s *OrderService) Complete(ctx context.Context, id uint) (*model.Order, error) {
	now := time.Now()
	order, err := s.orders.UpdateIfStatus(ctx, id,
		[]model.OrderStatus{model.OrderServed}, model.OrderCompleted, &now)
	if err != nil {
		return nil, s.mapOrderErr(err, id, "complete")
	}
	s.pub.Publish(events.OrderCompleted, order)
	return order, nil
}

// Cancel hợp lệ từ pending và served. Order đã completed là đã lên bill,
// không rút lại được.
func (s *OrderService) Cancel(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orders.UpdateIfStatus(ctx, id,
		[]model.OrderStatus{model.OrderPending, model.OrderServed}, model.OrderCancelled, nil)
	if err != nil {
		return nil, s.mapOrderErr(err, id, "cancel")
	}
	s.pub.Publish(events.OrderCancelled, order)
	return order, nil
}

func (s *OrderService) ListPending(ctx context.Context) ([]model.Order, error) {
	return s.orders.ByStatus(ctx, model.OrderPending)
}

func (s *OrderService) ListServed(ctx context.Context) ([]model.Order, error) {
	return s.orders.ByStatus(ctx, model.OrderServed)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orders.All(ctx)
}

// Reports tổng hợp doanh thu các order completed theo kỳ.
func (s *OrderService) Reports(ctx context.Context, query model.ReportQuery) (*model.ReportResult, error) {
	from, to, err := reportRange(query, time.Now())
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.CompletedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := model.ReportSummary{TotalOrders: len(orders)}
	for _, order := range orders {
		summary.TotalRevenue += order.Total
	}
	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}

	return &model.ReportResult{Orders: orders, Summary: summary}, nil
}

func reportRange(query model.ReportQuery, now time.Time) (*time.Time, *time.Time, error) {
	switch query.Period {
	case "today":
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &from, nil, nil
	case "week":
		from := now.AddDate(0, 0, -7)
		return &from, nil, nil
	case "month":
		from := now.AddDate(0, 0, -30)
		return &from, nil, nil
	case "custom":
		if query.StartDate == "" || query.EndDate == "" {
			return nil, nil, nil
		}
		from, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad startDate", ErrValidation)
		}
		to, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad endDate", ErrValidation)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		return &from, &to, nil
	default:
		return nil, nil, nil
	}
}

// ResetAll xoá sạch order, chỉ dành cho superadmin dọn dữ liệu.
func (s *OrderService) ResetAll(ctx context.Context) error {
	return s.orders.DeleteAll(ctx)
}

func (s *OrderService) mapOrderErr(err error, id uint, op string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	case errors.Is(err, store.ErrStaleState):
		log.Printf("order %d: %s rejected, status does not permit it", id, op)
		return ErrInvalidState
	default:
		return err
	}
}
