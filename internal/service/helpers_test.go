package service_test

import (
	"bytes"
	"testing"

	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/service/mocks"
	webhook_mocks "github.com/shenikar/emergency_dispatch/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

// testMocks - набор моков, общий для тестов сервисов
type testMocks struct {
	emergencies *mocks.MockEmergencyRepository
	responders  *mocks.MockResponderRepository
	assignments *mocks.MockAssignmentRepository
	store       *mocks.MockAssignmentStore
	publisher   *webhook_mocks.MockWebhookPublisher
}

func newTestMocks(t *testing.T) testMocks {
	ctrl := gomock.NewController(t)
	return testMocks{
		emergencies: mocks.NewMockEmergencyRepository(ctrl),
		responders:  mocks.NewMockResponderRepository(ctrl),
		assignments: mocks.NewMockAssignmentRepository(ctrl),
		store:       mocks.NewMockAssignmentStore(ctrl),
		publisher:   webhook_mocks.NewMockWebhookPublisher(ctrl),
	}
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestConfig() *config.Config {
	return &config.Config{
		NearestRespondersLimit: 3,
	}
}
