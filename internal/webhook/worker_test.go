package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	// redis в deliver не используется
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (DispatchEvent, string) {
	event := NewDispatchEvent(EventResponderAssigned, 42, 7, models.ResponderStatusAssigned)
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestDeliver_SignsPayload(t *testing.T) {
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent(t)

	ok := worker.deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent(t)

	ok := worker.deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent(t)

	ok := worker.deliver(context.Background(), event, payload)

	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	worker := newTestWorker(&config.Config{WebhookMaxRetries: 3})
	event, payload := testEvent(t)

	assert.False(t, worker.deliver(context.Background(), event, payload))
}

func TestNewDispatchEvent(t *testing.T) {
	event := NewDispatchEvent(EventResponderUnassigned, 1, 2, models.ResponderStatusActive)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, EventResponderUnassigned, event.Type)
	assert.Equal(t, int64(1), event.EmergencyID)
	assert.Equal(t, int64(2), event.ResponderID)
	assert.Equal(t, models.ResponderStatusActive, event.ResponderStatus)
	assert.WithinDuration(t, time.Now(), event.Timestamp, time.Minute)
}
