package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Publish đẩy event sang redis trong goroutine riêng, lỗi chỉ log rồi bỏ qua.
func (p *RedisPublisher) Publish(event string, payload any) {
	go func() {
		body, err := json.Marshal(Envelope{Event: event, Payload: payload})
		if err != nil {
			log.Printf("events: marshal %s failed: %v", event, err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.rdb.Publish(ctx, Channel, body).Err(); err != nil {
			log.Printf("events: publish %s failed: %v", event, err)
		}
	}()
}
