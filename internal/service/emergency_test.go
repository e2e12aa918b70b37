package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEmergency() *models.Emergency {
	return &models.Emergency{
		Name:        "Fire",
		Description: "Fire in the building.",
		Latitude:    -26.1044,
		Longitude:   28.2543,
	}
}

func TestCreateEmergency_Success(t *testing.T) {
	// Подготовка
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	emergency := newEmergency()
	emergency.Status = models.EmergencyStatusResolved // сервис обязан выставить active

	// Ожидания
	m.emergencies.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Emergency) error {
			assert.Equal(t, models.EmergencyStatusActive, e.Status)
			e.ID = 1 // Симулируем, что БД присвоила ID
			return nil
		}).Times(1)

	// Действие
	err := svc.CreateEmergency(ctx, emergency)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), emergency.ID)
	assert.Equal(t, models.EmergencyStatusActive, emergency.Status)
}

func TestCreateEmergency_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *models.Emergency)
	}{
		{"empty name", func(e *models.Emergency) { e.Name = "  " }},
		{"empty description", func(e *models.Emergency) { e.Description = "" }},
		{"latitude out of range", func(e *models.Emergency) { e.Latitude = 120 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMocks(t)
			svc := service.NewEmergencyService(m.emergencies, newTestLogger())
			emergency := newEmergency()
			tt.mutate(emergency)

			// Репозиторий не должен вызываться
			m.emergencies.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			err := svc.CreateEmergency(context.Background(), emergency)

			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreateEmergency_RepositoryError(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()

	m.emergencies.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection refused")).Times(1)

	err := svc.CreateEmergency(ctx, newEmergency())

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create emergency")
}

func TestGetEmergency_Success_FromCache(t *testing.T) {
	// Подготовка
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	expected := &models.Emergency{ID: 7, Name: "Fire"}

	// Ожидания
	m.emergencies.EXPECT().GetEmergencyFromCache(ctx, int64(7)).Return(expected, nil).Times(1)
	m.emergencies.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	emergency, err := svc.GetEmergency(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, emergency)
}

func TestGetEmergency_Success_FromDB(t *testing.T) {
	// Подготовка
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	expected := &models.Emergency{ID: 7, Name: "Medical"}

	// Ожидания
	// 1. Промах кеша
	m.emergencies.EXPECT().GetEmergencyFromCache(ctx, int64(7)).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	m.emergencies.EXPECT().GetByID(ctx, int64(7)).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	m.emergencies.EXPECT().SetEmergencyCache(ctx, expected).Return(nil).Times(1)

	// Действие
	emergency, err := svc.GetEmergency(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, emergency)
}

func TestGetEmergency_CacheErrorFallsBackToDB(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	expected := &models.Emergency{ID: 7}

	m.emergencies.EXPECT().GetEmergencyFromCache(ctx, int64(7)).Return(nil, errors.New("redis down")).Times(1)
	m.emergencies.EXPECT().GetByID(ctx, int64(7)).Return(expected, nil).Times(1)
	m.emergencies.EXPECT().SetEmergencyCache(ctx, expected).Return(errors.New("redis down")).Times(1)

	emergency, err := svc.GetEmergency(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, emergency)
}

func TestGetEmergency_NotFound(t *testing.T) {
	// Подготовка
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	dbError := fmt.Errorf("emergency with id 9: %w", models.ErrNotFound)

	// Ожидания
	m.emergencies.EXPECT().GetEmergencyFromCache(ctx, int64(9)).Return(nil, nil).Times(1)
	m.emergencies.EXPECT().GetByID(ctx, int64(9)).Return(nil, dbError).Times(1)

	// Действие
	emergency, err := svc.GetEmergency(ctx, 9)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, emergency)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "could not get emergency")
}

func TestListEmergencies_Success(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	expected := []*models.Emergency{{ID: 1, Name: "Fire"}, {ID: 2, Name: "Police"}}

	m.emergencies.EXPECT().List(ctx, models.EmergencyStatusActive).Return(expected, nil).Times(1)

	emergencies, err := svc.ListEmergencies(ctx, models.EmergencyStatusActive)

	require.NoError(t, err)
	assert.Equal(t, expected, emergencies)
}

func TestListEmergencies_InvalidStatus(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())

	m.emergencies.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ListEmergencies(context.Background(), models.EmergencyStatus("pending"))

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateEmergency_Success(t *testing.T) {
	// Подготовка
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	emergency := newEmergency()
	emergency.ID = 3
	emergency.Status = models.EmergencyStatusResolved

	// Ожидания
	m.emergencies.EXPECT().Update(ctx, emergency).Return(nil).Times(1)
	m.emergencies.EXPECT().InvalidateEmergencyCache(ctx, int64(3)).Return(nil).Times(1)

	// Действие
	err := svc.UpdateEmergency(ctx, emergency)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateEmergency_InvalidStatus(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	emergency := newEmergency()
	emergency.ID = 3
	emergency.Status = "closed"

	m.emergencies.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateEmergency(context.Background(), emergency)

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateEmergency_NotFound(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewEmergencyService(m.emergencies, newTestLogger())
	ctx := context.Background()
	emergency := newEmergency()
	emergency.ID = 404
	emergency.Status = models.EmergencyStatusActive

	m.emergencies.EXPECT().Update(ctx, emergency).Return(fmt.Errorf("emergency with id 404: %w", models.ErrNotFound)).Times(1)
	m.emergencies.EXPECT().InvalidateEmergencyCache(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateEmergency(ctx, emergency)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
