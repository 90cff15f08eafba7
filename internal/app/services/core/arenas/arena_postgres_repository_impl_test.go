package arenas

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var arenaColumns = []string{"id", "name", "interval_minutes", "start_time", "end_time", "is_default", "status", "created_at"}

func newTestArenaRepository(t *testing.T) (*arenaPostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &arenaPostgresRepository{DB: db, Log: zap.NewNop()}, mock
}

func TestArenaPostgresRepository_FindAll(t *testing.T) {
	repo, mock := newTestArenaRepository(t)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM arenas")).
		WillReturnRows(sqlmock.NewRows(arenaColumns).
			AddRow(1, "Main Hall", 30, "07:00", "21:00", true, 1, createdAt).
			AddRow(2, "Court B", 60, "08:00", "20:00", false, 1, createdAt))

	arenas, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, arenas, 2)
	assert.Equal(t, "Main Hall", arenas[0].Name)
	assert.Equal(t, 60, arenas[1].IntervalMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArenaPostgresRepository_FindAllQueryError(t *testing.T) {
	repo, mock := newTestArenaRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM arenas")).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.True(t, exceptions.IsStorage(err))
}

func TestArenaPostgresRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestArenaRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(arenaColumns).
				AddRow(3, "Pool", 15, "06:00", "10:00", false, constvars.StatusActive, time.Now()))

		arena, err := repo.FindByID(context.Background(), 3)
		require.NoError(t, err)
		require.NotNil(t, arena)
		assert.Equal(t, int64(3), arena.ID)
		assert.Equal(t, "06:00", arena.StartTime)
	})

	t.Run("missing row yields nil", func(t *testing.T) {
		repo, mock := newTestArenaRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(arenaColumns))

		arena, err := repo.FindByID(context.Background(), 9)
		require.NoError(t, err)
		assert.Nil(t, arena)
	})
}
