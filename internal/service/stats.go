package service

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// StatsService отдаёт счётчики для панели диспетчера
type StatsService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type statsService struct {
	emergencies EmergencyRepository
	responders  ResponderRepository
	logger      *logrus.Logger
}

func NewStatsService(emergencies EmergencyRepository, responders ResponderRepository, logger *logrus.Logger) StatsService {
	return &statsService{
		emergencies: emergencies,
		responders:  responders,
		logger:      logger,
	}
}

// GetDashboardStats выполняет три независимых подсчёта параллельно
func (s *statsService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "GetDashboardStats",
	})

	var stats models.DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.emergencies.CountByStatus(gctx, models.EmergencyStatusActive)
		if err != nil {
			return fmt.Errorf("count active emergencies: %w", err)
		}
		stats.ActiveEmergencies = n
		return nil
	})
	g.Go(func() error {
		n, err := s.responders.Count(gctx, "")
		if err != nil {
			return fmt.Errorf("count responders: %w", err)
		}
		stats.TotalResponders = n
		return nil
	})
	g.Go(func() error {
		n, err := s.responders.Count(gctx, models.ResponderStatusActive)
		if err != nil {
			return fmt.Errorf("count available responders: %w", err)
		}
		stats.AvailableResponders = n
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to collect dashboard stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	log.WithFields(logrus.Fields{
		"active_emergencies":   stats.ActiveEmergencies,
		"total_responders":     stats.TotalResponders,
		"available_responders": stats.AvailableResponders,
	}).Info("Dashboard stats collected")
	return &stats, nil
}
