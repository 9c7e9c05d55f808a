package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"restaurant_manager/store"
)

var cleanupScheduler gocron.Scheduler

// StartCleanupScheduler dọn các service call đã xử lý quá 7 ngày, chạy 4h sáng.
func StartCleanupScheduler(calls *store.ServiceCallStore) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("scheduler: init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(4, 0, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			n, err := calls.PurgeHandledBefore(ctx, time.Now().AddDate(0, 0, -7))
			if err != nil {
				log.Printf("scheduler: purge service calls failed: %v", err)
				return
			}
			if n > 0 {
				log.Printf("scheduler: purged %d handled service calls", n)
			}
		}),
	)
	if err != nil {
		log.Printf("scheduler: register job failed: %v", err)
		return
	}

	s.Start()
	cleanupScheduler = s
}

func StopCleanupScheduler() {
	if cleanupScheduler != nil {
		cleanupScheduler.Shutdown()
	}
}
