package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) service.AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// WithinTx выполняет fn в одной транзакции; при ошибке fn транзакция откатывается
func (r *AssignmentRepository) WithinTx(ctx context.Context, fn func(store service.AssignmentStore) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&assignmentStore{q: tx})
	})
}

// ListResponders возвращает спасателей, назначенных на ЧС, в порядке назначения
func (r *AssignmentRepository) ListResponders(ctx context.Context, emergencyID int64) ([]*models.Responder, error) {
	query := `
		SELECT r.id, r.name, r.type, r.latitude, r.longitude, r.status, r.phone_number, r.created_at, r.updated_at
		FROM emergency_responders er
		JOIN responders r ON r.id = er.responder_id
		WHERE er.emergency_id = $1
		ORDER BY er.created_at, r.id;
	`
	rows, err := r.db.Query(ctx, query, emergencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders of emergency %d: %w", emergencyID, err)
	}
	return collectResponders(rows)
}

type assignmentStore struct {
	q querier
}

func (s *assignmentStore) LockResponderStatus(ctx context.Context, responderID int64) (models.ResponderStatus, error) {
	var status string
	err := s.q.QueryRow(ctx, `SELECT status FROM responders WHERE id = $1 FOR UPDATE;`, responderID).Scan(&status)
	if err != nil {
		return "", fmt.Errorf("responder with id %d: %w", responderID, translatePgError(err))
	}
	return models.ResponderStatus(status), nil
}

// CreateLink падает с ErrAssignmentExists на повторной паре и с ErrNotFound, если ЧС не существует
func (s *assignmentStore) CreateLink(ctx context.Context, emergencyID, responderID int64) (*models.Assignment, error) {
	query := `
		INSERT INTO emergency_responders (emergency_id, responder_id)
		VALUES ($1, $2)
		RETURNING created_at;
	`
	assignment := &models.Assignment{EmergencyID: emergencyID, ResponderID: responderID}
	if err := s.q.QueryRow(ctx, query, emergencyID, responderID).Scan(&assignment.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to link responder %d to emergency %d: %w", responderID, emergencyID, translatePgError(err))
	}
	return assignment, nil
}

func (s *assignmentStore) DeleteLink(ctx context.Context, emergencyID, responderID int64) (bool, error) {
	query := `DELETE FROM emergency_responders WHERE emergency_id = $1 AND responder_id = $2;`
	cmdTag, err := s.q.Exec(ctx, query, emergencyID, responderID)
	if err != nil {
		return false, fmt.Errorf("failed to unlink responder %d from emergency %d: %w", responderID, emergencyID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (s *assignmentStore) CountLinks(ctx context.Context, responderID int64) (int, error) {
	var count int
	err := s.q.QueryRow(ctx, `SELECT COUNT(*) FROM emergency_responders WHERE responder_id = $1;`, responderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count links of responder %d: %w", responderID, err)
	}
	return count, nil
}

func (s *assignmentStore) SetResponderStatus(ctx context.Context, responderID int64, status models.ResponderStatus) error {
	query := `UPDATE responders SET status = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := s.q.Exec(ctx, query, string(status), responderID)
	if err != nil {
		return fmt.Errorf("failed to set status of responder %d: %w", responderID, translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("responder with id %d: %w", responderID, models.ErrNotFound)
	}
	return nil
}
