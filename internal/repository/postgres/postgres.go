package postgres

import (
	"database/sql"

	"dawati-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EventRepository
	repository.GuestRepository
	repository.CollaboratorRepository
	repository.CardAssetRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		EventRepository:        NewEventRepository(db),
		GuestRepository:        NewGuestRepository(db),
		CollaboratorRepository: NewCollaboratorRepository(db),
		CardAssetRepository:    NewCardAssetRepository(db),
	}
}
