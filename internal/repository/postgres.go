package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translatePgError приводит ошибки PostgreSQL к доменным ошибкам models
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%s: %w", pgErr.Detail, models.ErrAssignmentExists)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%s: %w", pgErr.Detail, models.ErrNotFound)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, models.ErrValidation)
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

const emergencyColumns = `id, name, description, latitude, longitude, status, created_at, updated_at`

func scanEmergency(row scanner) (*models.Emergency, error) {
	e := &models.Emergency{}
	var status string
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Latitude,
		&e.Longitude,
		&status,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Status = models.EmergencyStatus(status)
	return e, nil
}

const responderColumns = `id, name, type, latitude, longitude, status, phone_number, created_at, updated_at`

func scanResponder(row scanner) (*models.Responder, error) {
	r := &models.Responder{}
	var status string
	if err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Type,
		&r.Latitude,
		&r.Longitude,
		&status,
		&r.PhoneNumber,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	r.Status = models.ResponderStatus(status)
	return r, nil
}

func collectResponders(rows pgx.Rows) ([]*models.Responder, error) {
	defer rows.Close()

	responders := make([]*models.Responder, 0)
	for rows.Next() {
		r, err := scanResponder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responder list iteration: %w", err)
	}
	return responders, nil
}
