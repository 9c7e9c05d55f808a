package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"restaurant_manager/events"
	"restaurant_manager/model"
)

func newTableFixture(numbers ...int) (*TableService, *OrderService, *fakeTableStore, *fakeOrderStore, *recorderPub) {
	tables := newFakeTableStore(numbers...)
	orders := newFakeOrderStore()
	pub := &recorderPub{}
	return NewTableService(tables, orders, pub), NewOrderService(orders, tables, pub), tables, orders, pub
}

func TestActivateOpensSession(t *testing.T) {
	svc, _, _, _, pub := newTableFixture(5)

	table, err := svc.Activate(context.Background(), 5)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if table.Status != model.TableOccupied {
		t.Errorf("status = %s, want occupied", table.Status)
	}
	if table.SessionToken == "" {
		t.Error("session token is empty")
	}
	if !strings.Contains(table.SessionURL, "table=5") || !strings.Contains(table.SessionURL, "token="+table.SessionToken) {
		t.Errorf("session URL %q does not embed table and token", table.SessionURL)
	}
	if !strings.HasPrefix(table.SessionQR, "data:image/png;base64,") {
		t.Errorf("session QR is not a png data URL: %.40q", table.SessionQR)
	}
	if table.TotalAmount != 0 || len(table.OrderRefs) != 0 {
		t.Errorf("aggregate not zeroed: total=%v refs=%v", table.TotalAmount, table.OrderRefs)
	}
	if pub.last() != events.TableActivated {
		t.Errorf("last event = %s, want %s", pub.last(), events.TableActivated)
	}
}

func TestActivateTwiceFails(t *testing.T) {
	svc, _, tables, _, _ := newTableFixture(5)

	first, err := svc.Activate(context.Background(), 5)
	if err != nil {
		t.Fatalf("first activate: %v", err)
	}
	if _, err := svc.Activate(context.Background(), 5); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second activate err = %v, want ErrInvalidState", err)
	}

	current, _ := tables.ByNumber(context.Background(), 5)
	if current.SessionToken != first.SessionToken || current.Status != model.TableOccupied {
		t.Error("table state changed by failed activation")
	}
}

func TestActivateUnknownTable(t *testing.T) {
	svc, _, _, _, _ := newTableFixture(5)
	if _, err := svc.Activate(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStartCheckoutOnAvailableTable(t *testing.T) {
	svc, _, _, _, _ := newTableFixture(3)
	if _, err := svc.StartCheckout(context.Background(), 3); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
}

func TestCheckoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, _, orders, pub := newTableFixture(5)

	activated, err := svc.Activate(ctx, 5)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}

	order, err := orderSvc.Create(ctx, model.CreateOrderInput{
		TableNumber: 5,
		Token:       activated.SessionToken,
		Items: []model.OrderItemInput{
			{MenuItemID: "m1", Name: "Pho", Price: 100, Quantity: 2, Subtotal: 200},
		},
		Total: 200,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := orderSvc.MarkServed(ctx, order.ID); err != nil {
		t.Fatalf("serve: %v", err)
	}

	inCheckout, err := svc.StartCheckout(ctx, 5)
	if err != nil {
		t.Fatalf("start checkout: %v", err)
	}
	if inCheckout.Status != model.TableCheckout {
		t.Errorf("status = %s, want checkout", inCheckout.Status)
	}
	if inCheckout.TotalAmount != 200 {
		t.Errorf("aggregate = %v, want 200", inCheckout.TotalAmount)
	}
	if len(inCheckout.OrderRefs) != 1 || inCheckout.OrderRefs[0] != order.ID {
		t.Errorf("order refs = %v, want [%d]", inCheckout.OrderRefs, order.ID)
	}

	done, err := svc.CompleteCheckout(ctx, 5)
	if err != nil {
		t.Fatalf("complete checkout: %v", err)
	}
	if done.Status != model.TableAvailable || done.SessionToken != "" || done.TotalAmount != 0 || len(done.OrderRefs) != 0 {
		t.Errorf("table not reset: %+v", done)
	}

	completed, _ := orders.ByID(ctx, order.ID)
	if completed.Status != model.OrderCompleted || completed.CompletedAt == nil {
		t.Errorf("order not completed: status=%s completedAt=%v", completed.Status, completed.CompletedAt)
	}

	want := []string{events.TableActivated, events.OrderCreated, events.OrderServed, events.TableCheckoutStarted, events.TableCheckoutCompleted}
	got := pub.names()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCheckoutAggregateSkipsCancelled(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, _, _, _ := newTableFixture(2)

	activated, _ := svc.Activate(ctx, 2)
	item := model.OrderItemInput{MenuItemID: "m1", Name: "Com", Price: 50, Quantity: 1, Subtotal: 50}

	kept, _ := orderSvc.Create(ctx, model.CreateOrderInput{TableNumber: 2, Token: activated.SessionToken, Items: []model.OrderItemInput{item}, Total: 50})
	dropped, _ := orderSvc.Create(ctx, model.CreateOrderInput{TableNumber: 2, Token: activated.SessionToken, Items: []model.OrderItemInput{item}, Total: 50})
	orderSvc.MarkServed(ctx, kept.ID)
	orderSvc.MarkServed(ctx, dropped.ID)
	if _, err := orderSvc.Cancel(ctx, dropped.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	table, err := svc.StartCheckout(ctx, 2)
	if err != nil {
		t.Fatalf("start checkout: %v", err)
	}
	if table.TotalAmount != 50 {
		t.Errorf("aggregate = %v, want 50", table.TotalAmount)
	}
	if len(table.OrderRefs) != 1 || table.OrderRefs[0] != kept.ID {
		t.Errorf("order refs = %v, want [%d]", table.OrderRefs, kept.ID)
	}
}

func TestCheckoutScopedToCurrentSession(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, _, orders, _ := newTableFixture(4)

	// order served dưới token của phiên trước
	stale := &model.Order{TableNumber: 4, Token: "old-session", Status: model.OrderServed, Total: 999}
	orders.Create(ctx, stale)

	activated, _ := svc.Activate(ctx, 4)
	fresh, _ := orderSvc.Create(ctx, model.CreateOrderInput{
		TableNumber: 4, Token: activated.SessionToken,
		Items: []model.OrderItemInput{{MenuItemID: "m2", Name: "Bun", Price: 70, Quantity: 1, Subtotal: 70}},
		Total: 70,
	})
	orderSvc.MarkServed(ctx, fresh.ID)

	table, err := svc.StartCheckout(ctx, 4)
	if err != nil {
		t.Fatalf("start checkout: %v", err)
	}
	if table.TotalAmount != 70 {
		t.Errorf("aggregate = %v, want 70 (previous session must be excluded)", table.TotalAmount)
	}
}

func TestForceResetLeavesOrdersAlone(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, _, orders, pub := newTableFixture(7)

	activated, _ := svc.Activate(ctx, 7)
	order, _ := orderSvc.Create(ctx, model.CreateOrderInput{
		TableNumber: 7, Token: activated.SessionToken,
		Items: []model.OrderItemInput{{MenuItemID: "m3", Name: "Tra da", Price: 10, Quantity: 1, Subtotal: 10}},
		Total: 10,
	})

	table, err := svc.ForceReset(ctx, 7)
	if err != nil {
		t.Fatalf("force reset: %v", err)
	}
	if table.Status != model.TableAvailable || table.SessionToken != "" {
		t.Errorf("table not reset: %+v", table)
	}

	untouched, _ := orders.ByID(ctx, order.ID)
	if untouched.Status != model.OrderPending {
		t.Errorf("order status = %s, want pending", untouched.Status)
	}
	if pub.last() != events.TableForceReset {
		t.Errorf("last event = %s, want %s", pub.last(), events.TableForceReset)
	}
}

// Chết giữa completeCheckout (orders đã completed, bàn còn checkout): gọi lại
// phải kết thúc sạch vì bước order query theo status served.
func TestCompleteCheckoutReentrant(t *testing.T) {
	ctx := context.Background()
	svc, orderSvc, tables, orders, _ := newTableFixture(6)

	activated, _ := svc.Activate(ctx, 6)
	order, _ := orderSvc.Create(ctx, model.CreateOrderInput{
		TableNumber: 6, Token: activated.SessionToken,
		Items: []model.OrderItemInput{{MenuItemID: "m4", Name: "Lau", Price: 300, Quantity: 1, Subtotal: 300}},
		Total: 300,
	})
	orderSvc.MarkServed(ctx, order.ID)
	if _, err := svc.StartCheckout(ctx, 6); err != nil {
		t.Fatalf("start checkout: %v", err)
	}

	// mô phỏng crash: bulk complete đã chạy, reset bàn thì chưa
	now := time.Now()
	orders.CompleteServed(ctx, 6, activated.SessionToken, now)

	table, err := svc.CompleteCheckout(ctx, 6)
	if err != nil {
		t.Fatalf("re-run complete checkout: %v", err)
	}
	if table.Status != model.TableAvailable {
		t.Errorf("status = %s, want available", table.Status)
	}

	current, _ := tables.ByNumber(ctx, 6)
	if current.SessionToken != "" || current.TotalAmount != 0 {
		t.Errorf("table session not cleared: %+v", current)
	}
}

func TestSessionOrdersWithoutSession(t *testing.T) {
	svc, _, _, _, _ := newTableFixture(9)
	orders, err := svc.SessionOrders(context.Background(), 9)
	if err != nil {
		t.Fatalf("session orders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("orders = %v, want empty", orders)
	}
}
