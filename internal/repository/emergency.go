package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

type EmergencyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewEmergencyRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.EmergencyRepository {
	return &EmergencyRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает запись о ЧС; id и временные метки заполняет бд
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies (name, description, latitude, longitude, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Name,
		emergency.Description,
		emergency.Latitude,
		emergency.Longitude,
		string(emergency.Status),
	).Scan(&emergency.ID, &emergency.CreatedAt, &emergency.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w", translatePgError(err))
	}
	return nil
}

func (r *EmergencyRepository) GetByID(ctx context.Context, id int64) (*models.Emergency, error) {
	query := `SELECT ` + emergencyColumns + ` FROM emergencies WHERE id = $1;`

	emergency, err := scanEmergency(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("emergency with id %d: %w", id, translatePgError(err))
	}
	return emergency, nil
}

// Update перезаписывает все изменяемые поля ЧС
func (r *EmergencyRepository) Update(ctx context.Context, emergency *models.Emergency) error {
	query := `
		UPDATE emergencies SET
			name = $1,
			description = $2,
			latitude = $3,
			longitude = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Name,
		emergency.Description,
		emergency.Latitude,
		emergency.Longitude,
		string(emergency.Status),
		emergency.ID,
	).Scan(&emergency.CreatedAt, &emergency.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update emergency with id %d: %w", emergency.ID, translatePgError(err))
	}
	return nil
}

// List возвращает ЧС, новые первыми. Пустой status - без фильтра.
func (r *EmergencyRepository) List(ctx context.Context, status models.EmergencyStatus) ([]*models.Emergency, error) {
	query := `
		SELECT ` + emergencyColumns + `
		FROM emergencies
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		e, err := scanEmergency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w", err)
		}
		emergencies = append(emergencies, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error emergency list iteration: %w", err)
	}
	return emergencies, nil
}

func (r *EmergencyRepository) CountByStatus(ctx context.Context, status models.EmergencyStatus) (int, error) {
	query := `SELECT COUNT(*) FROM emergencies WHERE ($1::text = '' OR status = $1::text);`

	var count int
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count emergencies: %w", err)
	}
	return count, nil
}

func emergencyCacheKey(id int64) string {
	return fmt.Sprintf("emergency:%d", id)
}

// GetEmergencyFromCache возвращает (nil, nil) при промахе кэша
func (r *EmergencyRepository) GetEmergencyFromCache(ctx context.Context, id int64) (*models.Emergency, error) {
	val, err := r.redisClient.Get(ctx, emergencyCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency from cache: %w", err)
	}

	emergency := &models.Emergency{}
	if err := json.Unmarshal(val, emergency); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emergency from cache: %w", err)
	}
	return emergency, nil
}

func (r *EmergencyRepository) SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error {
	val, err := json.Marshal(emergency)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, emergencyCacheKey(emergency.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set emergency in cache: %w", err)
	}
	return nil
}

func (r *EmergencyRepository) InvalidateEmergencyCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, emergencyCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate emergency cache: %w", err)
	}
	return nil
}
