package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository/postgres"
)

func TestCollaboratorRepository_GetByEventAndUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCollaboratorRepository(db)
	ctx := context.Background()

	t.Run("Joins Derived Usage", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "event_id", "user_id", "allocated_quota", "used_quota", "created_on"}).
			AddRow(7, 10, 2, 50, 18, "2026-09-01")

		mock.ExpectQuery("SELECT c.id, c.event_id, c.user_id, c.allocated_quota").
			WithArgs(int32(10), int32(2)).
			WillReturnRows(rows)

		collab, err := repo.GetByEventAndUser(ctx, 10, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(50), collab.AllocatedQuota)
		assert.Equal(t, int32(18), collab.UsedQuota)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT c.id, c.event_id, c.user_id, c.allocated_quota").
			WithArgs(int32(10), int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		collab, err := repo.GetByEventAndUser(ctx, 10, 99)
		assert.Nil(t, collab)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCollaboratorRepository_AllocatedTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCollaboratorRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(allocated_quota\\), 0\\) FROM collaborators WHERE event_id = \\$1").
		WithArgs(int32(10)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(130))

	total, err := repo.AllocatedTotal(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int32(130), total)
}
