package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type collaboratorRepository struct {
	db *sql.DB
}

func NewCollaboratorRepository(db *sql.DB) repository.CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

func (r *collaboratorRepository) Create(ctx context.Context, collab *domain.Collaborator) error {
	query := `INSERT INTO collaborators (event_id, user_id, allocated_quota, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, collab.EventID, collab.UserID, collab.AllocatedQuota, now).Scan(&collab.ID)
}

// collaborator reads join the derived used_quota in so callers never see
// an allocation without its usage.
const collaboratorSelect = `SELECT c.id, c.event_id, c.user_id, c.allocated_quota,
	       COALESCE((SELECT SUM(g.accompanying_count) FROM guests g WHERE g.event_id = c.event_id AND g.added_by_user_id = c.user_id), 0) AS used_quota,
	       c.created_on
	  FROM collaborators c`

func (r *collaboratorRepository) GetByID(ctx context.Context, id int32) (*domain.Collaborator, error) {
	collab := &domain.Collaborator{}
	query := collaboratorSelect + ` WHERE c.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&collab.ID, &collab.EventID, &collab.UserID, &collab.AllocatedQuota, &collab.UsedQuota, &collab.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return collab, nil
}

func (r *collaboratorRepository) GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Collaborator, error) {
	collab := &domain.Collaborator{}
	query := collaboratorSelect + ` WHERE c.event_id = $1 AND c.user_id = $2`
	err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(
		&collab.ID, &collab.EventID, &collab.UserID, &collab.AllocatedQuota, &collab.UsedQuota, &collab.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return collab, nil
}

func (r *collaboratorRepository) Update(ctx context.Context, collab *domain.Collaborator) error {
	query := `UPDATE collaborators SET allocated_quota = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, collab.AllocatedQuota, collab.ID)
	return err
}

func (r *collaboratorRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collaborators WHERE id = $1`, id)
	return err
}

func (r *collaboratorRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Collaborator, error) {
	query := collaboratorSelect + ` WHERE c.event_id = $1 ORDER BY c.id ASC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collabs []domain.Collaborator
	for rows.Next() {
		var c domain.Collaborator
		if err := rows.Scan(&c.ID, &c.EventID, &c.UserID, &c.AllocatedQuota, &c.UsedQuota, &c.CreatedOn); err != nil {
			return nil, err
		}
		collabs = append(collabs, c)
	}
	return collabs, rows.Err()
}

func (r *collaboratorRepository) AllocatedTotal(ctx context.Context, eventID int32) (int32, error) {
	var total int32
	query := `SELECT COALESCE(SUM(allocated_quota), 0) FROM collaborators WHERE event_id = $1`
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(&total)
	return total, err
}
