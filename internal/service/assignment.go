package service

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/proximity"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AssignmentStore - операции над связями и статусом спасателя внутри одной транзакции
type AssignmentStore interface {
	// LockResponderStatus блокирует строку спасателя до конца транзакции и возвращает его статус
	LockResponderStatus(ctx context.Context, responderID int64) (models.ResponderStatus, error)
	CreateLink(ctx context.Context, emergencyID, responderID int64) (*models.Assignment, error)
	DeleteLink(ctx context.Context, emergencyID, responderID int64) (bool, error)
	CountLinks(ctx context.Context, responderID int64) (int, error)
	SetResponderStatus(ctx context.Context, responderID int64, status models.ResponderStatus) error
}

// AssignmentRepository определяет контракт для работы со связями ЧС и спасателей
type AssignmentRepository interface {
	// WithinTx выполняет fn в транзакции; ошибка fn откатывает все записи
	WithinTx(ctx context.Context, fn func(store AssignmentStore) error) error
	ListResponders(ctx context.Context, emergencyID int64) ([]*models.Responder, error)
}

// NearestQuery - параметры подбора ближайших спасателей
type NearestQuery struct {
	Type               string
	MatchEmergencyType bool
	Limit              int
}

// AssignmentService определяет контракт назначения спасателей на ЧС
type AssignmentService interface {
	AssignResponder(ctx context.Context, emergencyID, responderID int64) (*models.Assignment, error)
	UnassignResponder(ctx context.Context, emergencyID, responderID int64) error
	GetEmergencyWithResponders(ctx context.Context, emergencyID int64) (*models.EmergencyWithResponders, error)
	NearestResponders(ctx context.Context, emergencyID int64, query NearestQuery) ([]models.RankedResponder, error)
}

type assignmentService struct {
	assignments AssignmentRepository
	emergencies EmergencyRepository
	responders  ResponderRepository
	publisher   webhook.WebhookPublisher
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewAssignmentService(
	assignments AssignmentRepository,
	emergencies EmergencyRepository,
	responders ResponderRepository,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		emergencies: emergencies,
		responders:  responders,
		publisher:   publisher,
		logger:      logger,
		cfg:         cfg,
	}
}

// AssignResponder создает связь и переводит спасателя в assigned.
// Сначала вставляется связь, поэтому повторное назначение падает на уникальности
// и статус не трогается.
func (s *assignmentService) AssignResponder(ctx context.Context, emergencyID, responderID int64) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "AssignResponder",
		"emergency_id": emergencyID,
		"responder_id": responderID,
	})
	log.Info("Attempting to assign responder to emergency")

	var assignment *models.Assignment
	err := s.assignments.WithinTx(ctx, func(store AssignmentStore) error {
		status, err := store.LockResponderStatus(ctx, responderID)
		if err != nil {
			return err
		}
		if status == models.ResponderStatusOffline {
			return fmt.Errorf("responder %d: %w", responderID, models.ErrResponderUnavailable)
		}
		if assignment, err = store.CreateLink(ctx, emergencyID, responderID); err != nil {
			return err
		}
		return store.SetResponderStatus(ctx, responderID, models.ResponderStatusAssigned)
	})
	if err != nil {
		log.WithError(err).Error("Failed to assign responder")
		return nil, fmt.Errorf("service: could not assign responder: %w", err)
	}

	s.publish(ctx, log, webhook.NewDispatchEvent(webhook.EventResponderAssigned, emergencyID, responderID, models.ResponderStatusAssigned))
	log.Info("Responder assigned successfully")
	return assignment, nil
}

// UnassignResponder удаляет связь (отсутствие связи не ошибка) и возвращает спасателя
// в active, только если у него не осталось других назначений.
func (s *assignmentService) UnassignResponder(ctx context.Context, emergencyID, responderID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "UnassignResponder",
		"emergency_id": emergencyID,
		"responder_id": responderID,
	})
	log.Info("Attempting to remove responder from emergency")

	var (
		removed bool
		reset   bool
		status  models.ResponderStatus
	)
	err := s.assignments.WithinTx(ctx, func(store AssignmentStore) error {
		current, err := store.LockResponderStatus(ctx, responderID)
		if err != nil {
			return err
		}
		status = current

		removed, err = store.DeleteLink(ctx, emergencyID, responderID)
		if err != nil {
			return err
		}

		remaining, err := store.CountLinks(ctx, responderID)
		if err != nil {
			return err
		}
		// offline меняется только вручную
		if remaining > 0 || current != models.ResponderStatusAssigned {
			return nil
		}
		if err := store.SetResponderStatus(ctx, responderID, models.ResponderStatusActive); err != nil {
			return err
		}
		status = models.ResponderStatusActive
		reset = true
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to remove responder from emergency")
		return fmt.Errorf("service: could not remove responder: %w", err)
	}

	switch {
	case !removed && !reset:
		log.Info("No assignment to remove")
		return nil
	case !removed:
		// статус assigned остался без единой связи
		log.Warn("No assignment to remove, stale assigned status reset to active")
	}

	s.publish(ctx, log, webhook.NewDispatchEvent(webhook.EventResponderUnassigned, emergencyID, responderID, status))
	log.WithField("responder_status", status).Info("Responder removed from emergency successfully")
	return nil
}

// publish не влияет на результат операции: связь уже зафиксирована в бд
func (s *assignmentService) publish(ctx context.Context, log *logrus.Entry, event webhook.DispatchEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch event")
	}
}

// GetEmergencyWithResponders возвращает ЧС вместе со всеми назначенными спасателями
func (s *assignmentService) GetEmergencyWithResponders(ctx context.Context, emergencyID int64) (*models.EmergencyWithResponders, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "GetEmergencyWithResponders",
		"emergency_id": emergencyID,
	})
	log.Info("Fetching emergency with responders")

	emergency, err := s.emergencies.GetByID(ctx, emergencyID)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from repository")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}

	responders, err := s.assignments.ListResponders(ctx, emergencyID)
	if err != nil {
		log.WithError(err).Error("Failed to list assigned responders")
		return nil, fmt.Errorf("service: could not list assigned responders: %w", err)
	}

	log.WithField("count", len(responders)).Info("Emergency with responders fetched successfully")
	return &models.EmergencyWithResponders{
		Emergency:  *emergency,
		Responders: responders,
	}, nil
}

// NearestResponders ранжирует доступных спасателей по удалённости от места ЧС
func (s *assignmentService) NearestResponders(ctx context.Context, emergencyID int64, query NearestQuery) ([]models.RankedResponder, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "NearestResponders",
		"emergency_id": emergencyID,
	})

	emergency, err := s.emergencies.GetByID(ctx, emergencyID)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from repository")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}

	candidates, err := s.responders.List(ctx, models.ResponderStatusActive)
	if err != nil {
		log.WithError(err).Error("Failed to list available responders")
		return nil, fmt.Errorf("service: could not list available responders: %w", err)
	}

	filter := proximity.Filter{Status: models.ResponderStatusActive, Type: query.Type}
	if filter.Type == "" && query.MatchEmergencyType {
		filter.Type = emergency.Name
	}
	limit := query.Limit
	if limit <= 0 {
		limit = s.cfg.NearestRespondersLimit
	}

	ranked := proximity.Rank(emergency.Location(), candidates, filter, limit)
	log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"returned":   len(ranked),
		"type":       filter.Type,
	}).Info("Nearest responders ranked")
	return ranked, nil
}
