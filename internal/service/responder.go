package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// ResponderRepository определяет контракт для работы с бд спасателей
type ResponderRepository interface {
	Create(ctx context.Context, responder *models.Responder) error
	GetByID(ctx context.Context, id int64) (*models.Responder, error)
	// Update перезаписывает все поля, кроме статуса, и возвращает текущий статус в responder
	Update(ctx context.Context, responder *models.Responder) error
	List(ctx context.Context, status models.ResponderStatus) ([]*models.Responder, error)
	Count(ctx context.Context, status models.ResponderStatus) (int, error)
}

// ResponderService определяет контракт бизнес-логики управления спасателями
type ResponderService interface {
	CreateResponder(ctx context.Context, responder *models.Responder) error
	GetResponder(ctx context.Context, id int64) (*models.Responder, error)
	ListResponders(ctx context.Context, status models.ResponderStatus) ([]*models.Responder, error)
	ListAvailableResponders(ctx context.Context) ([]*models.Responder, error)
	UpdateResponder(ctx context.Context, responder *models.Responder) error
	UpdateResponderStatus(ctx context.Context, id int64, status models.ResponderStatus) (*models.Responder, error)
}

type responderService struct {
	repo        ResponderRepository
	assignments AssignmentRepository
	logger      *logrus.Logger
}

func NewResponderService(repo ResponderRepository, assignments AssignmentRepository, logger *logrus.Logger) ResponderService {
	return &responderService{
		repo:        repo,
		assignments: assignments,
		logger:      logger,
	}
}

func validateResponder(responder *models.Responder) error {
	if strings.TrimSpace(responder.Name) == "" {
		return fmt.Errorf("responder name is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(responder.Type) == "" {
		return fmt.Errorf("responder type is required: %w", models.ErrValidation)
	}
	if !responder.Location().Valid() {
		return fmt.Errorf("valid location coordinates are required: %w", models.ErrValidation)
	}
	return nil
}

// CreateResponder создает спасателя; без явного статуса он считается доступным
func (s *responderService) CreateResponder(ctx context.Context, responder *models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "CreateResponder",
		"name":    responder.Name,
		"type":    responder.Type,
	})
	log.Info("Attempting to create a new responder")

	if responder.Status == "" {
		responder.Status = models.ResponderStatusActive
	}
	if !responder.Status.Valid() {
		log.Warn("Invalid responder status")
		return fmt.Errorf("service: could not create responder: %q: %w", responder.Status, models.ErrInvalidStatus)
	}
	// у нового спасателя ещё нет связей
	if err := checkManualStatus(responder.Status, 0); err != nil {
		log.WithError(err).Warn("Responder status rejected")
		return fmt.Errorf("service: could not create responder: %w", err)
	}
	responder.Type = strings.ToLower(strings.TrimSpace(responder.Type))
	if err := validateResponder(responder); err != nil {
		log.WithError(err).Warn("Responder validation failed")
		return fmt.Errorf("service: could not create responder: %w", err)
	}

	if err := s.repo.Create(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to create responder in repository")
		return fmt.Errorf("service: could not create responder: %w", err)
	}

	log.WithField("responder_id", responder.ID).Info("Responder created successfully")
	return nil
}

func (s *responderService) GetResponder(ctx context.Context, id int64) (*models.Responder, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "GetResponder",
		"responder_id": id,
	})
	log.Info("Fetching responder by ID")

	responder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get responder from repository")
		return nil, fmt.Errorf("service: could not get responder: %w", err)
	}
	return responder, nil
}

// ListResponders возвращает спасателей; пустой status означает все статусы
func (s *responderService) ListResponders(ctx context.Context, status models.ResponderStatus) ([]*models.Responder, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "ListResponders",
		"status":  status,
	})
	log.Info("Listing responders")

	if status != "" && !status.Valid() {
		log.Warn("Invalid responder status filter")
		return nil, fmt.Errorf("service: could not list responders: %q: %w", status, models.ErrInvalidStatus)
	}

	responders, err := s.repo.List(ctx, status)
	if err != nil {
		log.WithError(err).Error("Failed to list responders from repository")
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}

	log.WithField("count", len(responders)).Info("Responders listed successfully")
	return responders, nil
}

func (s *responderService) ListAvailableResponders(ctx context.Context) ([]*models.Responder, error) {
	return s.ListResponders(ctx, models.ResponderStatusActive)
}

// UpdateResponder перезаписывает данные спасателя. Статус не меняется:
// active и assigned следуют за назначениями, offline ставится через UpdateResponderStatus.
func (s *responderService) UpdateResponder(ctx context.Context, responder *models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "UpdateResponder",
		"responder_id": responder.ID,
	})
	log.Info("Attempting to update responder")

	responder.Type = strings.ToLower(strings.TrimSpace(responder.Type))
	if err := validateResponder(responder); err != nil {
		log.WithError(err).Warn("Responder validation failed")
		return fmt.Errorf("service: could not update responder: %w", err)
	}

	if err := s.repo.Update(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to update responder in repository")
		return fmt.Errorf("service: could not update responder: %w", err)
	}

	log.Info("Responder updated successfully")
	return nil
}

// checkManualStatus сверяет новый статус с числом назначений спасателя.
// assigned допустим только при наличии связей, active только без них, offline всегда.
func checkManualStatus(status models.ResponderStatus, links int) error {
	switch {
	case status == models.ResponderStatusAssigned && links == 0:
		return fmt.Errorf("responder has no assignments: %w", models.ErrStatusConflict)
	case status == models.ResponderStatusActive && links > 0:
		return fmt.Errorf("responder still has %d assignments: %w", links, models.ErrStatusConflict)
	}
	return nil
}

// UpdateResponderStatus - ручная смена статуса, единственный способ войти в offline и выйти из него.
// Строка спасателя блокируется той же транзакцией, что и при назначении.
func (s *responderService) UpdateResponderStatus(ctx context.Context, id int64, status models.ResponderStatus) (*models.Responder, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "responder",
		"method":       "UpdateResponderStatus",
		"responder_id": id,
		"status":       status,
	})
	log.Info("Attempting to update responder status")

	if !status.Valid() {
		log.Warn("Invalid responder status")
		return nil, fmt.Errorf("service: could not update responder status: %q: %w", status, models.ErrInvalidStatus)
	}

	err := s.assignments.WithinTx(ctx, func(store AssignmentStore) error {
		current, err := store.LockResponderStatus(ctx, id)
		if err != nil {
			return err
		}
		links, err := store.CountLinks(ctx, id)
		if err != nil {
			return err
		}
		if err := checkManualStatus(status, links); err != nil {
			return err
		}
		if current == status {
			return nil
		}
		return store.SetResponderStatus(ctx, id, status)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update responder status")
		return nil, fmt.Errorf("service: could not update responder status: %w", err)
	}

	responder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to reload responder after status update")
		return nil, fmt.Errorf("service: could not update responder status: %w", err)
	}

	log.Info("Responder status updated successfully")
	return responder, nil
}
