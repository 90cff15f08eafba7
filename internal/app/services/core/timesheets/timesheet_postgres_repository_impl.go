package timesheets

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"arena-scheduler-service/internal/pkg/queries"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type timesheetPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger

	q querier
}

var (
	timesheetPostgresRepositoryInstance contracts.TimesheetRepository
	onceTimesheetPostgresRepository     sync.Once
)

func NewTimesheetPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.TimesheetRepository {
	onceTimesheetPostgresRepository.Do(func() {
		instance := &timesheetPostgresRepository{
			DB:  db,
			Log: logger,
			q:   db,
		}
		timesheetPostgresRepositoryInstance = instance
	})
	return timesheetPostgresRepositoryInstance
}

// WithTx runs fn against a repository bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (repo *timesheetPostgresRepository) WithTx(ctx context.Context, fn func(repo contracts.TimesheetRepository) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if _, inTx := repo.q.(*sql.Tx); inTx {
		return fn(repo)
	}

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		repo.Log.Error("timesheetPostgresRepository.WithTx error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBBeginTransaction(err)
	}

	txRepo := &timesheetPostgresRepository{DB: repo.DB, Log: repo.Log, q: tx}
	err = fn(txRepo)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			repo.Log.Error("timesheetPostgresRepository.WithTx error rolling back",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(rbErr),
			)
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		repo.Log.Error("timesheetPostgresRepository.WithTx error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBCommitTransaction(err)
	}
	return nil
}

func (repo *timesheetPostgresRepository) FindByNaturalKey(ctx context.Context, arenaID int64, slotID string) (*models.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	entry, err := scanEntry(repo.q.QueryRowContext(ctx, queries.GetTimesheetByNaturalKey, arenaID, slotID))
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("timesheetPostgresRepository.FindByNaturalKey error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return entry, nil
}

func (repo *timesheetPostgresRepository) FindByNaturalKeyAndDate(ctx context.Context, arenaID int64, slotID string, scheduledDate time.Time) (*models.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	date := scheduledDate.Format(constvars.DateLayout)
	entry, err := scanEntry(repo.q.QueryRowContext(ctx, queries.GetTimesheetByNaturalKeyAndDate, arenaID, slotID, date))
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("timesheetPostgresRepository.FindByNaturalKeyAndDate error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
			zap.String(constvars.LoggingSlotIDKey, slotID),
			zap.String(constvars.LoggingScheduledDateKey, date),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return entry, nil
}

func (repo *timesheetPostgresRepository) Insert(ctx context.Context, entry *models.TimesheetEntry) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var id int64
	err := repo.q.QueryRowContext(ctx, queries.InsertTimesheet,
		entry.ArenaID,
		entry.SlotID,
		entry.CategoryID,
		entry.Comment,
		entry.ScheduledDate.Format(constvars.DateLayout),
	).Scan(&id)
	if err != nil {
		repo.Log.Error("timesheetPostgresRepository.Insert error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, entry.ArenaID),
			zap.String(constvars.LoggingSlotIDKey, entry.SlotID),
			zap.Error(err),
		)
		return 0, translateWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("timesheetPostgresRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTimesheetIDKey, id),
	)
	return id, nil
}

func (repo *timesheetPostgresRepository) UpdateCategory(ctx context.Context, timesheetID, categoryID int64) error {
	return repo.execUpdate(ctx, "UpdateCategory", timesheetID, queries.UpdateTimesheetCategory, categoryID, timesheetID)
}

func (repo *timesheetPostgresRepository) UpdateComment(ctx context.Context, timesheetID int64, comment string) error {
	return repo.execUpdate(ctx, "UpdateComment", timesheetID, queries.UpdateTimesheetComment, comment, timesheetID)
}

func (repo *timesheetPostgresRepository) UpdateCategoryAndComment(ctx context.Context, timesheetID, categoryID int64, comment string) error {
	return repo.execUpdate(ctx, "UpdateCategoryAndComment", timesheetID, queries.UpdateTimesheetCategoryAndComment, categoryID, comment, timesheetID)
}

func (repo *timesheetPostgresRepository) execUpdate(ctx context.Context, method string, timesheetID int64, query string, args ...interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result, err := repo.q.ExecContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error(fmt.Sprintf("timesheetPostgresRepository.%s error executing query", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingTimesheetIDKey, timesheetID),
			zap.Error(err),
		)
		return translateWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		repo.Log.Warn(fmt.Sprintf("timesheetPostgresRepository.%s no rows updated", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingTimesheetIDKey, timesheetID),
		)
		return exceptions.ErrNotFound(sql.ErrNoRows, constvars.ResourceTimesheetEntry)
	}
	return nil
}

func (repo *timesheetPostgresRepository) FindByDateRange(ctx context.Context, arenaID int64, from, to time.Time) ([]models.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timesheetPostgresRepository.FindByDateRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
	)

	rows, err := repo.q.QueryContext(ctx, queries.GetTimesheetsByDateRange, arenaID, from.Format(constvars.DateLayout), to.Format(constvars.DateLayout))
	if err != nil {
		repo.Log.Error("timesheetPostgresRepository.FindByDateRange error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	entries := make([]models.TimesheetEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("timesheetPostgresRepository.FindByDateRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(entries)),
	)
	return entries, nil
}

func (repo *timesheetPostgresRepository) FindDetailByID(ctx context.Context, timesheetID int64) (*models.TimesheetDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	detail, err := scanDetail(repo.q.QueryRowContext(ctx, queries.GetTimesheetDetailByID, timesheetID))
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("timesheetPostgresRepository.FindDetailByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingTimesheetIDKey, timesheetID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return detail, nil
}

func (repo *timesheetPostgresRepository) FindDetailsByDateRange(ctx context.Context, arenaID int64, from, to time.Time) ([]models.TimesheetDetail, error) {
	return repo.queryDetails(ctx, "FindDetailsByDateRange", queries.GetTimesheetDetailsByDateRange,
		arenaID, from.Format(constvars.DateLayout), to.Format(constvars.DateLayout))
}

func (repo *timesheetPostgresRepository) FindDetailsByDateAndCategory(ctx context.Context, arenaID int64, scheduledDate time.Time, categoryID int64) ([]models.TimesheetDetail, error) {
	return repo.queryDetails(ctx, "FindDetailsByDateAndCategory", queries.GetTimesheetDetailsByDateAndCategory,
		arenaID, scheduledDate.Format(constvars.DateLayout), categoryID)
}

func (repo *timesheetPostgresRepository) queryDetails(ctx context.Context, method, query string, args ...interface{}) ([]models.TimesheetDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	rows, err := repo.q.QueryContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error(fmt.Sprintf("timesheetPostgresRepository.%s error executing query", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	details := make([]models.TimesheetDetail, 0)
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			repo.Log.Error(fmt.Sprintf("timesheetPostgresRepository.%s error scanning row", method),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		details = append(details, *detail)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return details, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*models.TimesheetEntry, error) {
	var entry models.TimesheetEntry
	err := row.Scan(
		&entry.ID,
		&entry.ArenaID,
		&entry.SlotID,
		&entry.CategoryID,
		&entry.Comment,
		&entry.ScheduledDate,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func scanDetail(row rowScanner) (*models.TimesheetDetail, error) {
	var detail models.TimesheetDetail
	err := row.Scan(
		&detail.ID,
		&detail.ArenaID,
		&detail.SlotID,
		&detail.CategoryID,
		&detail.Comment,
		&detail.ScheduledDate,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.CategoryName,
		&detail.CategoryColor,
		&detail.CategoryTextColor,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// translateWriteError maps constraint violations onto the domain errors and
// wraps everything else with fallback.
func translateWriteError(err error, fallback func(error) *exceptions.CustomError) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return exceptions.ErrConcurrentModification(err)
		case pqForeignKeyViolation:
			resource := constvars.ResourceArena
			if pqErr.Constraint == "arena_scheduled_timesheets_category_id_fkey" {
				resource = constvars.ResourceCategory
			}
			return exceptions.ErrNotFound(err, resource)
		}
	}
	return fallback(err)
}
