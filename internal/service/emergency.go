package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// EmergencyRepository определяет контракт для работы с бд чрезвычайных ситуаций
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id int64) (*models.Emergency, error)
	Update(ctx context.Context, emergency *models.Emergency) error
	List(ctx context.Context, status models.EmergencyStatus) ([]*models.Emergency, error)
	CountByStatus(ctx context.Context, status models.EmergencyStatus) (int, error)

	GetEmergencyFromCache(ctx context.Context, id int64) (*models.Emergency, error)
	SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error
	InvalidateEmergencyCache(ctx context.Context, id int64) error
}

// EmergencyService определяет контракт бизнес-логики управления ЧС
type EmergencyService interface {
	CreateEmergency(ctx context.Context, emergency *models.Emergency) error
	GetEmergency(ctx context.Context, id int64) (*models.Emergency, error)
	ListEmergencies(ctx context.Context, status models.EmergencyStatus) ([]*models.Emergency, error)
	UpdateEmergency(ctx context.Context, emergency *models.Emergency) error
}

type emergencyService struct {
	repo   EmergencyRepository
	logger *logrus.Logger
}

func NewEmergencyService(repo EmergencyRepository, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		repo:   repo,
		logger: logger,
	}
}

// validateEmergency проверяет обязательные поля до записи в хранилище
func validateEmergency(emergency *models.Emergency) error {
	if strings.TrimSpace(emergency.Name) == "" {
		return fmt.Errorf("emergency name is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(emergency.Description) == "" {
		return fmt.Errorf("emergency description is required: %w", models.ErrValidation)
	}
	if !emergency.Location().Valid() {
		return fmt.Errorf("valid location coordinates are required: %w", models.ErrValidation)
	}
	return nil
}

// CreateEmergency регистрирует новую ЧС со статусом active
func (s *emergencyService) CreateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "CreateEmergency",
		"name":    emergency.Name,
	})
	log.Info("Attempting to create a new emergency")

	if err := validateEmergency(emergency); err != nil {
		log.WithError(err).Warn("Emergency validation failed")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}

	emergency.Status = models.EmergencyStatusActive
	if err := s.repo.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}

	log.WithField("emergency_id", emergency.ID).Info("Emergency created successfully")
	return nil
}

// GetEmergency возвращает ЧС, сначала пытаясь взять её из кэша
func (s *emergencyService) GetEmergency(ctx context.Context, id int64) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "GetEmergency",
		"emergency_id": id,
	})

	cached, err := s.repo.GetEmergencyFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read emergency from cache")
	}
	if cached != nil {
		log.Debug("Emergency served from cache")
		return cached, nil
	}

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from repository")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}

	if err := s.repo.SetEmergencyCache(ctx, emergency); err != nil {
		log.WithError(err).Warn("Failed to cache emergency")
	}

	log.Info("Emergency fetched successfully")
	return emergency, nil
}

// ListEmergencies возвращает ЧС; пустой status означает все статусы
func (s *emergencyService) ListEmergencies(ctx context.Context, status models.EmergencyStatus) ([]*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListEmergencies",
		"status":  status,
	})
	log.Info("Listing emergencies")

	if status != "" && !status.Valid() {
		log.Warn("Invalid emergency status filter")
		return nil, fmt.Errorf("service: could not list emergencies: %q: %w", status, models.ErrInvalidStatus)
	}

	emergencies, err := s.repo.List(ctx, status)
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from repository")
		return nil, fmt.Errorf("service: could not list emergencies: %w", err)
	}

	log.WithField("count", len(emergencies)).Info("Emergencies listed successfully")
	return emergencies, nil
}

// UpdateEmergency полностью перезаписывает ЧС. Статус назначенных спасателей не меняется.
func (s *emergencyService) UpdateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "UpdateEmergency",
		"emergency_id": emergency.ID,
	})
	log.Info("Attempting to update emergency")

	if err := validateEmergency(emergency); err != nil {
		log.WithError(err).Warn("Emergency validation failed")
		return fmt.Errorf("service: could not update emergency: %w", err)
	}
	if !emergency.Status.Valid() {
		log.WithField("status", emergency.Status).Warn("Invalid emergency status")
		return fmt.Errorf("service: could not update emergency: %q: %w", emergency.Status, models.ErrInvalidStatus)
	}

	if err := s.repo.Update(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to update emergency in repository")
		return fmt.Errorf("service: could not update emergency: %w", err)
	}

	if err := s.repo.InvalidateEmergencyCache(ctx, emergency.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate emergency cache")
	}

	log.Info("Emergency updated successfully")
	return nil
}
