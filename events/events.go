// Package events fans state-change notifications out to connected clients.
// Mutating handlers publish after a successful write; delivery is best-effort
// and a slow subscriber can never fail the triggering request.
package events

// Event catalog
const (
	TableActivated         = "table.activated"
	TableCheckoutStarted   = "table.checkoutStarted"
	TableCheckoutCompleted = "table.checkoutCompleted"
	TableForceReset        = "table.forceReset"
	OrderCreated           = "order.created"
	OrderServed            = "order.served"
	OrderCompleted         = "order.completed"
	OrderCancelled         = "order.cancelled"
	ServiceCalled          = "service.called"
	ServiceHandled         = "service.handled"
)

// Channel là kênh redis pub/sub dùng chung cho mọi event.
const Channel = "restaurant:events"

type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Publisher is the only capability the services depend on. The redis-backed
// implementation feeds the websocket hub; tests plug in a recorder.
type Publisher interface {
	Publish(event string, payload any)
}
