package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tably/config"
	podRepo "tably/database/repository/pod"
	"tably/models"

	"github.com/hibiken/asynq"
)

const TypeCleaningOverdue = "pod:cleaning_overdue"

// CleaningCheckPayload identifies the pod to re-check once the cleaning
// grace period has elapsed.
type CleaningCheckPayload struct {
	TenantID string `json:"tenantId"`
	PodID    string `json:"podId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// NewTaskClient returns an asynq client for enqueueing background tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueCleaningCheck schedules an overdue check for a pod that just
// entered CLEANING.
func EnqueueCleaningCheck(client *asynq.Client, tenantID, podID string, delay time.Duration) error {
	payload, err := json.Marshal(CleaningCheckPayload{TenantID: tenantID, PodID: podID})
	if err != nil {
		return fmt.Errorf("failed to marshal cleaning check payload: %w", err)
	}
	task := asynq.NewTask(TypeCleaningOverdue, payload)
	if _, err := client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue cleaning check: %w", err)
	}
	return nil
}

// InitPodWorker runs the async worker in background.
func InitPodWorker(pods podRepo.PodRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleaningOverdue, handleCleaningCheck(pods))

	go func() {
		log.Println("[PodWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PodWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PodWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleCleaningCheck(pods podRepo.PodRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p CleaningCheckPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PodWorker] invalid payload: %v", err)
			return err
		}

		pod, err := pods.GetByID(p.TenantID, p.PodID)
		if err != nil {
			// Pod was removed from the board; nothing to flag.
			log.Printf("[PodWorker] pod %s gone, skipping overdue check", p.PodID)
			return nil
		}
		if pod.Status == models.PodCleaning {
			log.Printf("[PodWorker] pod %s (%s) still CLEANING past grace period since %s",
				pod.ID, pod.Label, pod.UpdatedAt.Format(time.RFC3339))
		}
		return nil
	}
}
