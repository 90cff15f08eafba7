package timesheets

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	entryColumns  = []string{"id", "arena_id", "timeslot_id", "category_id", "comment", "scheduled_date", "created_at", "updated_at"}
	detailColumns = append(append([]string{}, entryColumns...), "name", "color", "text_color")
)

func newTestTimesheetRepository(t *testing.T) (*timesheetPostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &timesheetPostgresRepository{DB: db, Log: zap.NewNop(), q: db}, mock
}

func newEntry() *models.TimesheetEntry {
	return &models.TimesheetEntry{
		ArenaID:       7,
		SlotID:        "2025010609000930",
		CategoryID:    1,
		ScheduledDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	}
}

func TestTimesheetPostgresRepository_FindByNaturalKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE arena_id = $1 AND timeslot_id = $2")).
			WithArgs(int64(7), "2025010609000930").
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow(11, 7, "2025010609000930", 2, "note", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), now, now))

		entry, err := repo.FindByNaturalKey(context.Background(), 7, "2025010609000930")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, int64(11), entry.ID)
		assert.Equal(t, int64(2), entry.CategoryID)
		assert.Equal(t, "note", entry.Comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE arena_id = $1 AND timeslot_id = $2")).
			WillReturnRows(sqlmock.NewRows(entryColumns))

		entry, err := repo.FindByNaturalKey(context.Background(), 7, "2025010609000930")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}

func TestTimesheetPostgresRepository_FindByNaturalKeyAndDate(t *testing.T) {
	repo, mock := newTestTimesheetRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("AND scheduled_date = $3")).
		WithArgs(int64(7), "2025010609000930", "2025-01-06").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	entry, err := repo.FindByNaturalKeyAndDate(context.Background(), 7, "2025010609000930", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetPostgresRepository_Insert(t *testing.T) {
	t.Run("returns id", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO arena_scheduled_timesheets")).
			WithArgs(int64(7), "2025010609000930", int64(1), "", "2025-01-06").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := repo.Insert(context.Background(), newEntry())
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is a concurrent modification", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO arena_scheduled_timesheets")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "arena_scheduled_timesheets_arena_id_timeslot_id_key"})

		_, err := repo.Insert(context.Background(), newEntry())
		require.Error(t, err)
		assert.True(t, exceptions.IsConcurrentModification(err))
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO arena_scheduled_timesheets")).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "arena_scheduled_timesheets_category_id_fkey"})

		_, err := repo.Insert(context.Background(), newEntry())
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("other failures are storage errors", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO arena_scheduled_timesheets")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Insert(context.Background(), newEntry())
		require.Error(t, err)
		assert.True(t, exceptions.IsStorage(err))
	})
}

func TestTimesheetPostgresRepository_Updates(t *testing.T) {
	t.Run("category", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectExec(regexp.QuoteMeta("SET category_id = $1, updated_at = NOW()")).
			WithArgs(int64(2), int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateCategory(context.Background(), 11, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("comment on missing row", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectExec(regexp.QuoteMeta("SET comment = $1, updated_at = NOW()")).
			WithArgs("late", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateComment(context.Background(), 99, "late")
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("category and comment", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectExec(regexp.QuoteMeta("SET category_id = $1, comment = $2")).
			WithArgs(int64(1), "copied", int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateCategoryAndComment(context.Background(), 11, 1, "copied"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTimesheetPostgresRepository_FindDetailsByDateRange(t *testing.T) {
	repo, mock := newTestTimesheetRepository(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INNER JOIN arena_categories")).
		WithArgs(int64(7), "2025-01-06", "2025-01-12").
		WillReturnRows(sqlmock.NewRows(detailColumns).
			AddRow(1, 7, "2025010609000930", 1, "", monday, now, now, "Training", "#ff0000", "#ffffff").
			AddRow(2, 7, "2025010609301000", 2, "x", monday, now, now, "Match", "#00ff00", "#000000"))

	details, err := repo.FindDetailsByDateRange(context.Background(), 7, monday, monday.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Training", details[0].CategoryName)
	assert.Equal(t, "#000000", details[1].CategoryTextColor)
	assert.Equal(t, "09:30-10:00", details[1].ConvertIntoResponse().Display)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetPostgresRepository_WithTx(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET category_id = $1, updated_at = NOW()")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.WithTx(context.Background(), func(txRepo contracts.TimesheetRepository) error {
			return txRepo.UpdateCategory(context.Background(), 11, 2)
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET category_id = $1, updated_at = NOW()")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.WithTx(context.Background(), func(txRepo contracts.TimesheetRepository) error {
			return txRepo.UpdateCategory(context.Background(), 11, 2)
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newTestTimesheetRepository(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := repo.WithTx(context.Background(), func(txRepo contracts.TimesheetRepository) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStorage(err))
	})
}
