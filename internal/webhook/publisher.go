package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

const (
	dispatchQueueKey = "dispatch_events"
)

type EventType string

const (
	EventResponderAssigned   EventType = "responder.assigned"
	EventResponderUnassigned EventType = "responder.unassigned"
)

// DispatchEvent - изменение назначения спасателя, отправляемое во внешний вебхук
type DispatchEvent struct {
	ID              uuid.UUID              `json:"id"`
	Type            EventType              `json:"type"`
	EmergencyID     int64                  `json:"emergency_id"`
	ResponderID     int64                  `json:"responder_id"`
	ResponderStatus models.ResponderStatus `json:"responder_status"`
	Timestamp       time.Time              `json:"timestamp"`
}

// NewDispatchEvent заполняет идентификатор и время события
func NewDispatchEvent(eventType EventType, emergencyID, responderID int64, status models.ResponderStatus) DispatchEvent {
	return DispatchEvent{
		ID:              uuid.New(),
		Type:            eventType,
		EmergencyID:     emergencyID,
		ResponderID:     responderID,
		ResponderStatus: status,
		Timestamp:       time.Now().UTC(),
	}
}

// WebhookPublisher - интерфейс для публикации событий диспетчеризации
type WebhookPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisWebhookPublisher складывает события в очередь Redis, откуда их забирает WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish добавляет событие в левую часть очереди
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
