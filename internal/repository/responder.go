package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{db: db}
}

func (r *ResponderRepository) Create(ctx context.Context, responder *models.Responder) error {
	query := `
		INSERT INTO responders (name, type, latitude, longitude, status, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		responder.Name,
		responder.Type,
		responder.Latitude,
		responder.Longitude,
		string(responder.Status),
		responder.PhoneNumber,
	).Scan(&responder.ID, &responder.CreatedAt, &responder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", translatePgError(err))
	}
	return nil
}

func (r *ResponderRepository) GetByID(ctx context.Context, id int64) (*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders WHERE id = $1;`

	responder, err := scanResponder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("responder with id %d: %w", id, translatePgError(err))
	}
	return responder, nil
}

// Update не трогает статус: им управляют назначения и ручная смена статуса
func (r *ResponderRepository) Update(ctx context.Context, responder *models.Responder) error {
	query := `
		UPDATE responders SET
			name = $1,
			type = $2,
			latitude = $3,
			longitude = $4,
			phone_number = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING status, created_at, updated_at;
	`
	var status string
	err := r.db.QueryRow(ctx, query,
		responder.Name,
		responder.Type,
		responder.Latitude,
		responder.Longitude,
		responder.PhoneNumber,
		responder.ID,
	).Scan(&status, &responder.CreatedAt, &responder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update responder with id %d: %w", responder.ID, translatePgError(err))
	}
	responder.Status = models.ResponderStatus(status)
	return nil
}

// List возвращает спасателей по id. Пустой status - без фильтра.
func (r *ResponderRepository) List(ctx context.Context, status models.ResponderStatus) ([]*models.Responder, error) {
	query := `
		SELECT ` + responderColumns + `
		FROM responders
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	return collectResponders(rows)
}

func (r *ResponderRepository) Count(ctx context.Context, status models.ResponderStatus) (int, error) {
	query := `SELECT COUNT(*) FROM responders WHERE ($1::text = '' OR status = $1::text);`

	var count int
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count responders: %w", err)
	}
	return count, nil
}
