package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (owner_id, title, package_type, total_invite_quota, approval_status, status, event_date, admin_notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		event.OwnerID, event.Title, event.PackageType, event.TotalInviteQuota,
		event.ApprovalStatus, event.Status, event.EventDate, event.AdminNotes, now, now,
	).Scan(&event.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	event := &domain.Event{}
	query := `SELECT id, owner_id, title, package_type, total_invite_quota, approval_status, status, event_date, card_asset_id, COALESCE(admin_notes, ''), created_on, updated_on
	          FROM events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.OwnerID, &event.Title, &event.PackageType, &event.TotalInviteQuota,
		&event.ApprovalStatus, &event.Status, &event.EventDate, &event.CardAssetID, &event.AdminNotes,
		&event.CreatedOn, &event.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `UPDATE events SET title = $1, approval_status = $2, status = $3, event_date = $4, card_asset_id = $5, admin_notes = $6, updated_on = $7
	          WHERE id = $8`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query,
		event.Title, event.ApprovalStatus, event.Status, event.EventDate,
		event.CardAssetID, event.AdminNotes, now, event.ID,
	)
	return err
}

func (r *eventRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Event, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, owner_id, title, package_type, total_invite_quota, approval_status, status, event_date, card_asset_id, COALESCE(admin_notes, ''), created_on, updated_on
	          FROM events WHERE owner_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM events WHERE owner_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, ownerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, count, nil
}

func (r *eventRepository) ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, owner_id, title, package_type, total_invite_quota, approval_status, status, event_date, card_asset_id, COALESCE(admin_notes, ''), created_on, updated_on
	          FROM events WHERE approval_status = $1 ORDER BY created_on ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM events WHERE approval_status = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, count, nil
}

func (r *eventRepository) ListPastUpcoming(ctx context.Context, before string) ([]domain.Event, error) {
	query := `SELECT id, owner_id, title, package_type, total_invite_quota, approval_status, status, event_date, card_asset_id, COALESCE(admin_notes, ''), created_on, updated_on
	          FROM events WHERE status = $1 AND event_date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.EventStatusUpcoming, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Title, &e.PackageType, &e.TotalInviteQuota,
			&e.ApprovalStatus, &e.Status, &e.EventDate, &e.CardAssetID, &e.AdminNotes,
			&e.CreatedOn, &e.UpdatedOn,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
