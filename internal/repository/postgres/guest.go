package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	query := `INSERT INTO guests (event_id, added_by_user_id, name, phone, accompanying_count, whatsapp_message_sent, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		guest.EventID, guest.AddedByUserID, guest.Name, guest.Phone,
		guest.AccompanyingCount, guest.WhatsappMessageSent, now, now,
	).Scan(&guest.ID)
}

func (r *guestRepository) GetByID(ctx context.Context, id int32) (*domain.Guest, error) {
	guest := &domain.Guest{}
	query := `SELECT id, event_id, added_by_user_id, name, phone, accompanying_count, whatsapp_message_sent, whatsapp_message_sent_at, created_on, updated_on
	          FROM guests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&guest.ID, &guest.EventID, &guest.AddedByUserID, &guest.Name, &guest.Phone,
		&guest.AccompanyingCount, &guest.WhatsappMessageSent, &guest.WhatsappMessageSentAt,
		&guest.CreatedOn, &guest.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return guest, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	query := `UPDATE guests SET name = $1, phone = $2, accompanying_count = $3, updated_on = $4 WHERE id = $5`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, guest.Name, guest.Phone, guest.AccompanyingCount, now, guest.ID)
	return err
}

func (r *guestRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	return err
}

func (r *guestRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Guest, error) {
	query := `SELECT id, event_id, added_by_user_id, name, phone, accompanying_count, whatsapp_message_sent, whatsapp_message_sent_at, created_on, updated_on
	          FROM guests WHERE event_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGuests(rows)
}

func (r *guestRepository) ListByAdder(ctx context.Context, eventID, userID int32) ([]domain.Guest, error) {
	query := `SELECT id, event_id, added_by_user_id, name, phone, accompanying_count, whatsapp_message_sent, whatsapp_message_sent_at, created_on, updated_on
	          FROM guests WHERE event_id = $1 AND added_by_user_id = $2 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, eventID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGuests(rows)
}

func (r *guestRepository) SeatsUsedByAdder(ctx context.Context, eventID, userID int32) (int32, error) {
	var used int32
	query := `SELECT COALESCE(SUM(accompanying_count), 0) FROM guests WHERE event_id = $1 AND added_by_user_id = $2`
	err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(&used)
	return used, err
}

func (r *guestRepository) SeatsUsedTotal(ctx context.Context, eventID int32) (int32, error) {
	var used int32
	query := `SELECT COALESCE(SUM(accompanying_count), 0) FROM guests WHERE event_id = $1`
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(&used)
	return used, err
}

func (r *guestRepository) CountDispatched(ctx context.Context, eventID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM guests WHERE event_id = $1 AND whatsapp_message_sent = true`
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count)
	return count, err
}

func (r *guestRepository) ExistsByPhone(ctx context.Context, eventID int32, phone string) (bool, error) {
	var count int32
	query := `SELECT count(*) FROM guests WHERE event_id = $1 AND phone = $2`
	if err := r.db.QueryRowContext(ctx, query, eventID, phone).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *guestRepository) MarkDispatched(ctx context.Context, id int32, sentAt string) error {
	query := `UPDATE guests SET whatsapp_message_sent = true, whatsapp_message_sent_at = $1, updated_on = $2 WHERE id = $3`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, sentAt, now, id)
	return err
}

func (r *guestRepository) ReassignAdder(ctx context.Context, eventID, fromUserID, toUserID int32) error {
	query := `UPDATE guests SET added_by_user_id = $1, updated_on = $2 WHERE event_id = $3 AND added_by_user_id = $4`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, toUserID, now, eventID, fromUserID)
	return err
}

func scanGuests(rows *sql.Rows) ([]domain.Guest, error) {
	var guests []domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(
			&g.ID, &g.EventID, &g.AddedByUserID, &g.Name, &g.Phone,
			&g.AccompanyingCount, &g.WhatsappMessageSent, &g.WhatsappMessageSentAt,
			&g.CreatedOn, &g.UpdatedOn,
		); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
