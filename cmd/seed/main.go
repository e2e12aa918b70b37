package main

import (
	"context"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/repository"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/shenikar/emergency_dispatch/pkg/logger"
	"github.com/shenikar/emergency_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/emergency_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"
)

// Демонстрационные данные вокруг Йоханнесбурга
var (
	seedEmergencies = []*models.Emergency{
		{Name: "Fire", Description: "Fire in the building.", Latitude: -26.1044, Longitude: 28.2543},
		{Name: "Medical", Description: "Old lady collapsed on the street.", Latitude: -26.1074, Longitude: 28.0543},
		{Name: "Police", Description: "Vehicle accident on the highway.", Latitude: -26.1084, Longitude: 28.0933},
	}

	seedResponders = []*models.Responder{
		{Name: "ADT Security", Type: "security", Latitude: -27.1074, Longitude: 28.0543},
		{Name: "SAPS", Type: "police", Latitude: -26.1074, Longitude: 28.0543},
		{Name: "ER24", Type: "medical", Latitude: -26.1074, Longitude: 28.0543},
		{Name: "Fire Station 1", Type: "fire", Latitude: -26.1089, Longitude: 28.2511},
	}

	// пары индексов (ЧС, спасатель)
	seedLinks = [][2]int{{0, 3}, {1, 2}, {2, 1}, {0, 0}}
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	emergencyRepo := repository.NewEmergencyRepository(dbpool, redisClient, cfg.CacheTTL)
	responderRepo := repository.NewResponderRepository(dbpool)
	assignmentRepo := repository.NewAssignmentRepository(dbpool)

	emergencies := service.NewEmergencyService(emergencyRepo, log)
	responders := service.NewResponderService(responderRepo, assignmentRepo, log)
	assignments := service.NewAssignmentService(assignmentRepo, emergencyRepo, responderRepo,
		webhook.NewRedisWebhookPublisher(redisClient), log, cfg)

	existing, err := emergencies.ListEmergencies(ctx, "")
	if err != nil {
		log.Fatalf("Failed to list emergencies: %v", err)
	}
	if len(existing) > 0 {
		log.WithField("count", len(existing)).Info("Database already seeded, nothing to do")
		return
	}

	for _, e := range seedEmergencies {
		if err := emergencies.CreateEmergency(ctx, e); err != nil {
			log.Fatalf("Failed to seed emergency %q: %v", e.Name, err)
		}
	}
	log.Info("Emergencies created successfully")

	for _, r := range seedResponders {
		if err := responders.CreateResponder(ctx, r); err != nil {
			log.Fatalf("Failed to seed responder %q: %v", r.Name, err)
		}
	}
	log.Info("Responders created successfully")

	for _, link := range seedLinks {
		e, r := seedEmergencies[link[0]], seedResponders[link[1]]
		if _, err := assignments.AssignResponder(ctx, e.ID, r.ID); err != nil {
			log.Fatalf("Failed to assign %q to %q: %v", r.Name, e.Name, err)
		}
	}
	log.Info("Assignments created successfully")
}
