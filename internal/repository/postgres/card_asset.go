package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type cardAssetRepository struct {
	db *sql.DB
}

func NewCardAssetRepository(db *sql.DB) repository.CardAssetRepository {
	return &cardAssetRepository{db: db}
}

func (r *cardAssetRepository) Create(ctx context.Context, asset *domain.CardAsset) error {
	query := `INSERT INTO card_assets (event_id, uploaded_by, storage_key, content_type, file_size_bytes, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		asset.EventID, asset.UploadedBy, asset.StorageKey, asset.ContentType,
		asset.FileSizeBytes, asset.Status, now,
	).Scan(&asset.ID)
}

func (r *cardAssetRepository) GetByID(ctx context.Context, id int32) (*domain.CardAsset, error) {
	asset := &domain.CardAsset{}
	query := `SELECT id, event_id, uploaded_by, storage_key, content_type, file_size_bytes, status, created_on
	          FROM card_assets WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.ID, &asset.EventID, &asset.UploadedBy, &asset.StorageKey,
		&asset.ContentType, &asset.FileSizeBytes, &asset.Status, &asset.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *cardAssetRepository) Update(ctx context.Context, asset *domain.CardAsset) error {
	query := `UPDATE card_assets SET event_id = $1, file_size_bytes = $2, status = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, asset.EventID, asset.FileSizeBytes, asset.Status, asset.ID)
	return err
}

func (r *cardAssetRepository) DeleteExpiredPending(ctx context.Context, before string) error {
	query := `DELETE FROM card_assets WHERE status = $1 AND created_on < $2`
	_, err := r.db.ExecContext(ctx, query, domain.CardAssetStatusPending, before)
	return err
}
