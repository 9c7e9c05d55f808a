package service

import (
	"context"
	"sync"
	"time"

	"restaurant_manager/events"
	"restaurant_manager/model"
	"restaurant_manager/store"
)

// In-memory stores mirroring the conditional-update semantics of the gorm
// implementations, so the state machines run without postgres.

type fakeTableStore struct {
	mu     sync.Mutex
	tables map[int]*model.Table
}

func newFakeTableStore(numbers ...int) *fakeTableStore {
	s := &fakeTableStore{tables: make(map[int]*model.Table)}
	for i, n := range numbers {
		s.tables[n] = &model.Table{
			DTO:       model.DTO{ID: uint(i + 1)},
			Number:    n,
			Status:    model.TableAvailable,
			OrderRefs: model.UintList{},
		}
	}
	return s
}

func (s *fakeTableStore) All(ctx context.Context) ([]model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Table
	for _, t := range s.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (s *fakeTableStore) ByNumber(ctx context.Context, number int) (*model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[number]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTableStore) UpdateIfStatus(ctx context.Context, number int, expect model.TableStatus, session model.TableSession) (*model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[number]
	if !ok {
		return nil, store.ErrNotFound
	}
	if t.Status != expect {
		return nil, store.ErrStaleState
	}
	applySession(t, session)
	copied := *t
	return &copied, nil
}

func (s *fakeTableStore) Reset(ctx context.Context, number int) (*model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[number]
	if !ok {
		return nil, store.ErrNotFound
	}
	applySession(t, model.TableSession{Status: model.TableAvailable})
	copied := *t
	return &copied, nil
}

func applySession(t *model.Table, session model.TableSession) {
	t.Status = session.Status
	t.SessionToken = session.SessionToken
	t.SessionURL = session.SessionURL
	t.SessionQR = session.SessionQR
	t.TotalAmount = session.TotalAmount
	if session.OrderRefs == nil {
		t.OrderRefs = model.UintList{}
	} else {
		t.OrderRefs = session.OrderRefs
	}
}

type fakeOrderStore struct {
	mu     sync.Mutex
	nextID uint
	orders map[uint]*model.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uint]*model.Order)}
}

func (s *fakeOrderStore) Create(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	order.ID = s.nextID
	order.CreatedAt = time.Now()
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *fakeOrderStore) ByID(ctx context.Context, id uint) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (s *fakeOrderStore) ByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for id := uint(1); id <= s.nextID; id++ {
		if o, ok := s.orders[id]; ok && o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) All(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for id := s.nextID; id >= 1; id-- {
		if o, ok := s.orders[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) BySession(ctx context.Context, tableNumber int, token string, statuses []model.OrderStatus) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for id := uint(1); id <= s.nextID; id++ {
		o, ok := s.orders[id]
		if !ok || o.TableNumber != tableNumber || o.Token != token {
			continue
		}
		for _, st := range statuses {
			if o.Status == st {
				out = append(out, *o)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeOrderStore) UpdateIfStatus(ctx context.Context, id uint, expect []model.OrderStatus, next model.OrderStatus, completedAt *time.Time) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	matched := false
	for _, st := range expect {
		if o.Status == st {
			matched = true
			break
		}
	}
	if !matched {
		return nil, store.ErrStaleState
	}
	o.Status = next
	if completedAt != nil {
		o.CompletedAt = completedAt
	}
	copied := *o
	return &copied, nil
}

func (s *fakeOrderStore) CompleteServed(ctx context.Context, tableNumber int, token string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.TableNumber == tableNumber && o.Token == token && o.Status == model.OrderServed {
			o.Status = model.OrderCompleted
			stamp := at
			o.CompletedAt = &stamp
		}
	}
	return nil
}

func (s *fakeOrderStore) CompletedBetween(ctx context.Context, from, to *time.Time) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for id := uint(1); id <= s.nextID; id++ {
		o, ok := s.orders[id]
		if !ok || o.Status != model.OrderCompleted || o.CompletedAt == nil {
			continue
		}
		if from != nil && o.CompletedAt.Before(*from) {
			continue
		}
		if to != nil && o.CompletedAt.After(*to) {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (s *fakeOrderStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[uint]*model.Order)
	return nil
}

type fakeCallStore struct {
	mu     sync.Mutex
	nextID uint
	calls  map[uint]*model.ServiceCall
}

func newFakeCallStore() *fakeCallStore {
	return &fakeCallStore{calls: make(map[uint]*model.ServiceCall)}
}

func (s *fakeCallStore) UpsertPending(ctx context.Context, tableNumber int) (*model.ServiceCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c.TableNumber == tableNumber && c.Status == model.CallPending {
			copied := *c
			return &copied, nil
		}
	}
	s.nextID++
	call := &model.ServiceCall{
		DTO:         model.DTO{ID: s.nextID, CreatedAt: time.Now()},
		TableNumber: tableNumber,
		Status:      model.CallPending,
	}
	s.calls[call.ID] = call
	copied := *call
	return &copied, nil
}

func (s *fakeCallStore) Pending(ctx context.Context) ([]model.ServiceCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ServiceCall
	for id := uint(1); id <= s.nextID; id++ {
		if c, ok := s.calls[id]; ok && c.Status == model.CallPending {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *fakeCallStore) Handle(ctx context.Context, id uint, at time.Time) (*model.ServiceCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.calls[id]
	if !ok || c.Status != model.CallPending {
		return nil, store.ErrNotFound
	}
	c.Status = model.CallHandled
	stamp := at
	c.HandledAt = &stamp
	copied := *c
	return &copied, nil
}

// recorderPub captures published envelopes synchronously for assertions.
type recorderPub struct {
	mu        sync.Mutex
	envelopes []events.Envelope
}

func (r *recorderPub) Publish(event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = append(r.envelopes, events.Envelope{Event: event, Payload: payload})
}

func (r *recorderPub) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.envelopes {
		out = append(out, e.Event)
	}
	return out
}

func (r *recorderPub) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.envelopes) == 0 {
		return ""
	}
	return r.envelopes[len(r.envelopes)-1].Event
}
