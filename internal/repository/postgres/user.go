package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, phone_number, password_hash, name, is_admin, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query,
		user.Email, user.PhoneNumber, user.PasswordHash, user.Name, user.IsAdmin, now, now,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, email, COALESCE(phone_number, ''), password_hash, name, is_admin, created_on, updated_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PhoneNumber, &user.PasswordHash, &user.Name,
		&user.IsAdmin, &user.CreatedOn, &user.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, email, COALESCE(phone_number, ''), password_hash, name, is_admin, created_on, updated_on
	          FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PhoneNumber, &user.PasswordHash, &user.Name,
		&user.IsAdmin, &user.CreatedOn, &user.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $1, phone_number = $2, name = $3, updated_on = $4 WHERE id = $5`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, user.Email, user.PhoneNumber, user.Name, now, user.ID)
	return err
}
