package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memAssignments - транзакционное хранилище связей в памяти: fn работает с копией,
// которая применяется только при успешном завершении
type memAssignments struct {
	links      map[[2]int64]bool
	statuses   map[int64]models.ResponderStatus
	responders map[int64]*models.Responder
}

func newMemAssignments(responders ...*models.Responder) *memAssignments {
	m := &memAssignments{
		links:      map[[2]int64]bool{},
		statuses:   map[int64]models.ResponderStatus{},
		responders: map[int64]*models.Responder{},
	}
	for _, r := range responders {
		m.responders[r.ID] = r
		m.statuses[r.ID] = r.Status
	}
	return m
}

func (m *memAssignments) WithinTx(_ context.Context, fn func(store service.AssignmentStore) error) error {
	tx := &memStore{
		links:    map[[2]int64]bool{},
		statuses: map[int64]models.ResponderStatus{},
	}
	for k, v := range m.links {
		tx.links[k] = v
	}
	for k, v := range m.statuses {
		tx.statuses[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	m.links, m.statuses = tx.links, tx.statuses
	return nil
}

func (m *memAssignments) ListResponders(_ context.Context, emergencyID int64) ([]*models.Responder, error) {
	var out []*models.Responder
	for link := range m.links {
		if link[0] != emergencyID {
			continue
		}
		r := *m.responders[link[1]]
		r.Status = m.statuses[r.ID]
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memAssignments) status(id int64) models.ResponderStatus {
	return m.statuses[id]
}

type memStore struct {
	links    map[[2]int64]bool
	statuses map[int64]models.ResponderStatus
}

func (s *memStore) LockResponderStatus(_ context.Context, responderID int64) (models.ResponderStatus, error) {
	st, ok := s.statuses[responderID]
	if !ok {
		return "", fmt.Errorf("responder with id %d: %w", responderID, models.ErrNotFound)
	}
	return st, nil
}

func (s *memStore) CreateLink(_ context.Context, emergencyID, responderID int64) (*models.Assignment, error) {
	key := [2]int64{emergencyID, responderID}
	if s.links[key] {
		return nil, fmt.Errorf("link (%d, %d): %w", emergencyID, responderID, models.ErrAssignmentExists)
	}
	s.links[key] = true
	return &models.Assignment{EmergencyID: emergencyID, ResponderID: responderID, CreatedAt: time.Now()}, nil
}

func (s *memStore) DeleteLink(_ context.Context, emergencyID, responderID int64) (bool, error) {
	key := [2]int64{emergencyID, responderID}
	if !s.links[key] {
		return false, nil
	}
	delete(s.links, key)
	return true, nil
}

func (s *memStore) CountLinks(_ context.Context, responderID int64) (int, error) {
	n := 0
	for link := range s.links {
		if link[1] == responderID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) SetResponderStatus(_ context.Context, responderID int64, status models.ResponderStatus) error {
	s.statuses[responderID] = status
	return nil
}

func mustAssign(t *testing.T, svc service.AssignmentService, emergencyID, responderID int64) {
	t.Helper()
	_, err := svc.AssignResponder(context.Background(), emergencyID, responderID)
	require.NoError(t, err)
}

// newMemAssignmentService собирает сервис поверх хранилища в памяти
func newMemAssignmentService(t *testing.T, store *memAssignments) (service.AssignmentService, testMocks) {
	m := newTestMocks(t)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	svc := service.NewAssignmentService(store, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
	return svc, m
}

func TestAssignResponder_WritesLinkThenStatus(t *testing.T) {
	// Подготовка
	m := newTestMocks(t)
	svc := service.NewAssignmentService(m.assignments, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Ожидания
	m.assignments.EXPECT().
		WithinTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(service.AssignmentStore) error) error {
			return fn(m.store)
		}).Times(1)
	gomock.InOrder(
		m.store.EXPECT().LockResponderStatus(ctx, int64(7)).Return(models.ResponderStatusActive, nil),
		m.store.EXPECT().CreateLink(ctx, int64(42), int64(7)).Return(&models.Assignment{EmergencyID: 42, ResponderID: 7, CreatedAt: createdAt}, nil),
		m.store.EXPECT().SetResponderStatus(ctx, int64(7), models.ResponderStatusAssigned).Return(nil),
	)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.DispatchEvent) {
			assert.Equal(t, webhook.EventResponderAssigned, event.Type)
			assert.Equal(t, int64(42), event.EmergencyID)
			assert.Equal(t, int64(7), event.ResponderID)
			assert.Equal(t, models.ResponderStatusAssigned, event.ResponderStatus)
		}).Return(nil).Times(1)

	// Действие
	assignment, err := svc.AssignResponder(ctx, 42, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.Assignment{EmergencyID: 42, ResponderID: 7, CreatedAt: createdAt}, assignment)
}

func TestAssignResponder_DuplicateSkipsStatusWrite(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewAssignmentService(m.assignments, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
	ctx := context.Background()

	m.assignments.EXPECT().
		WithinTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(service.AssignmentStore) error) error {
			return fn(m.store)
		}).Times(1)
	m.store.EXPECT().LockResponderStatus(ctx, int64(7)).Return(models.ResponderStatusAssigned, nil)
	m.store.EXPECT().CreateLink(ctx, int64(42), int64(7)).Return(nil, models.ErrAssignmentExists)
	m.store.EXPECT().SetResponderStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AssignResponder(ctx, 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAssignmentExists)
}

func TestAssignResponder_OfflineRejected(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewAssignmentService(m.assignments, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
	ctx := context.Background()

	m.assignments.EXPECT().
		WithinTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(service.AssignmentStore) error) error {
			return fn(m.store)
		}).Times(1)
	m.store.EXPECT().LockResponderStatus(ctx, int64(7)).Return(models.ResponderStatusOffline, nil)
	m.store.EXPECT().CreateLink(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AssignResponder(ctx, 42, 7)

	assert.ErrorIs(t, err, models.ErrResponderUnavailable)
}

func TestAssignResponder_PublishFailureIsNotFatal(t *testing.T) {
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusActive})
	m := newTestMocks(t)
	svc := service.NewAssignmentService(store, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	_, err := svc.AssignResponder(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.Equal(t, models.ResponderStatusAssigned, store.status(7))
}

func TestAssignThenUnassign_RestoresActive(t *testing.T) {
	// Подготовка
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusActive})
	svc, _ := newMemAssignmentService(t, store)
	ctx := context.Background()

	// Действие
	mustAssign(t, svc, 42, 7)
	assert.Equal(t, models.ResponderStatusAssigned, store.status(7))
	require.NoError(t, svc.UnassignResponder(ctx, 42, 7))

	// Проверки
	assert.Empty(t, store.links)
	assert.Equal(t, models.ResponderStatusActive, store.status(7))
}

func TestAssignTwice_SecondFailsAndStatusStaysAssigned(t *testing.T) {
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusActive})
	svc, _ := newMemAssignmentService(t, store)
	ctx := context.Background()

	mustAssign(t, svc, 42, 7)
	_, err := svc.AssignResponder(ctx, 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAssignmentExists)
	assert.Equal(t, models.ResponderStatusAssigned, store.status(7))
	assert.Len(t, store.links, 1)
}

func TestUnassign_KeepsAssignedWhileOtherLinksRemain(t *testing.T) {
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusActive})
	svc, _ := newMemAssignmentService(t, store)
	ctx := context.Background()

	mustAssign(t, svc, 1, 7)
	mustAssign(t, svc, 2, 7)

	require.NoError(t, svc.UnassignResponder(ctx, 1, 7))
	assert.Equal(t, models.ResponderStatusAssigned, store.status(7))

	require.NoError(t, svc.UnassignResponder(ctx, 2, 7))
	assert.Equal(t, models.ResponderStatusActive, store.status(7))
}

func TestUnassign_MissingLinkIsNoop(t *testing.T) {
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusActive})
	m := newTestMocks(t)
	svc := service.NewAssignmentService(store, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UnassignResponder(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.Equal(t, models.ResponderStatusActive, store.status(7))
}

func TestUnassign_StaleAssignedWithoutLinkIsResetAndReported(t *testing.T) {
	// статус assigned без единой связи
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusAssigned})
	m := newTestMocks(t)
	svc := service.NewAssignmentService(store, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())

	m.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event webhook.DispatchEvent) {
			assert.Equal(t, webhook.EventResponderUnassigned, event.Type)
			assert.Equal(t, int64(7), event.ResponderID)
			assert.Equal(t, models.ResponderStatusActive, event.ResponderStatus)
		}).Return(nil).Times(1)

	err := svc.UnassignResponder(context.Background(), 42, 7)

	require.NoError(t, err)
	assert.Equal(t, models.ResponderStatusActive, store.status(7))
}

func TestUnassign_DoesNotBringOfflineBack(t *testing.T) {
	store := newMemAssignments(&models.Responder{ID: 7, Status: models.ResponderStatusActive})
	svc, _ := newMemAssignmentService(t, store)
	ctx := context.Background()

	mustAssign(t, svc, 42, 7)
	// диспетчер вручную перевёл спасателя в offline, не снимая назначения
	store.statuses[7] = models.ResponderStatusOffline

	require.NoError(t, svc.UnassignResponder(ctx, 42, 7))

	assert.Empty(t, store.links)
	assert.Equal(t, models.ResponderStatusOffline, store.status(7))
}

func TestUnassign_UnknownResponder(t *testing.T) {
	store := newMemAssignments()
	svc, _ := newMemAssignmentService(t, store)

	err := svc.UnassignResponder(context.Background(), 42, 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUnassign_StatusWriteFailureRollsBack(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewAssignmentService(m.assignments, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
	ctx := context.Background()
	writeErr := errors.New("deadlock detected")

	m.assignments.EXPECT().
		WithinTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(service.AssignmentStore) error) error {
			return fn(m.store)
		}).Times(1)
	m.store.EXPECT().LockResponderStatus(ctx, int64(7)).Return(models.ResponderStatusAssigned, nil)
	m.store.EXPECT().DeleteLink(ctx, int64(42), int64(7)).Return(true, nil)
	m.store.EXPECT().CountLinks(ctx, int64(7)).Return(0, nil)
	m.store.EXPECT().SetResponderStatus(ctx, int64(7), models.ResponderStatusActive).Return(writeErr)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UnassignResponder(ctx, 42, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
}

func TestGetEmergencyWithResponders_TwoLinks(t *testing.T) {
	// Подготовка
	store := newMemAssignments(
		&models.Responder{ID: 1, Name: "SAPS", Type: "police", Status: models.ResponderStatusActive},
		&models.Responder{ID: 2, Name: "ER24", Type: "medical", Status: models.ResponderStatusActive},
		&models.Responder{ID: 3, Name: "ADT", Type: "security", Status: models.ResponderStatusActive},
	)
	svc, m := newMemAssignmentService(t, store)
	ctx := context.Background()
	emergency := &models.Emergency{ID: 42, Name: "Police", Status: models.EmergencyStatusActive}

	mustAssign(t, svc, 42, 1)
	mustAssign(t, svc, 42, 2)
	mustAssign(t, svc, 41, 3)

	// Ожидания
	m.emergencies.EXPECT().GetByID(ctx, int64(42)).Return(emergency, nil).Times(1)

	// Действие
	result, err := svc.GetEmergencyWithResponders(ctx, 42)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
	require.Len(t, result.Responders, 2)
	assert.Equal(t, int64(1), result.Responders[0].ID)
	assert.Equal(t, int64(2), result.Responders[1].ID)
	assert.Equal(t, models.ResponderStatusAssigned, result.Responders[0].Status)
}

func TestGetEmergencyWithResponders_NotFound(t *testing.T) {
	m := newTestMocks(t)
	svc := service.NewAssignmentService(m.assignments, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
	ctx := context.Background()

	m.emergencies.EXPECT().GetByID(ctx, int64(404)).Return(nil, fmt.Errorf("emergency with id 404: %w", models.ErrNotFound)).Times(1)
	m.assignments.EXPECT().ListResponders(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.GetEmergencyWithResponders(ctx, 404)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNearestResponders(t *testing.T) {
	emergency := &models.Emergency{ID: 42, Name: "Medical", Latitude: -26.1074, Longitude: 28.0543}
	candidates := []*models.Responder{
		{ID: 1, Type: "police", Status: models.ResponderStatusActive, Latitude: -26.2, Longitude: 28.1},
		{ID: 2, Type: "medical", Status: models.ResponderStatusActive, Latitude: -26.1095, Longitude: 28.0543},
		{ID: 3, Type: "medical", Status: models.ResponderStatusActive, Latitude: -26.5, Longitude: 28.5},
		{ID: 4, Type: "fire", Status: models.ResponderStatusActive, Latitude: -26.12, Longitude: 28.06},
		{ID: 5, Type: "fire", Status: models.ResponderStatusActive, Latitude: -26.3, Longitude: 28.3},
	}

	tests := []struct {
		name    string
		query   service.NearestQuery
		wantIDs []int64
	}{
		{"default limit from config", service.NearestQuery{}, []int64{2, 4, 1}},
		{"explicit limit", service.NearestQuery{Limit: 5}, []int64{2, 4, 1, 5, 3}},
		{"explicit type", service.NearestQuery{Type: "FIRE"}, []int64{4, 5}},
		{"match emergency type", service.NearestQuery{MatchEmergencyType: true}, []int64{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMocks(t)
			svc := service.NewAssignmentService(m.assignments, m.emergencies, m.responders, m.publisher, newTestLogger(), newTestConfig())
			ctx := context.Background()

			m.emergencies.EXPECT().GetByID(ctx, int64(42)).Return(emergency, nil).Times(1)
			m.responders.EXPECT().List(ctx, models.ResponderStatusActive).Return(candidates, nil).Times(1)

			ranked, err := svc.NearestResponders(ctx, 42, tt.query)

			require.NoError(t, err)
			got := make([]int64, len(ranked))
			for i, r := range ranked {
				got[i] = r.Responder.ID
			}
			assert.Equal(t, tt.wantIDs, got)
			if got[0] == 2 {
				assert.InDelta(t, 0.233, ranked[0].DistanceKm, 0.001)
			}
		})
	}
}
