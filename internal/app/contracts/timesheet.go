package contracts

import (
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/dto/requests"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type TimesheetUsecase interface {
	UpsertCategory(ctx context.Context, request *requests.UpsertCategory) (*responses.TimesheetEntry, error)
	UpsertComment(ctx context.Context, request *requests.UpsertComment) (*responses.TimesheetEntry, error)
	CopyRange(ctx context.Context, request *requests.CopyRange) ([]responses.TimesheetEntry, error)
	CopyRangeBySlot(ctx context.Context, request *requests.CopyRangeBySlot) (*responses.CopyRange, error)
	CopyWeek(ctx context.Context, request *requests.CopyWeek) (*responses.CopyWeekResult, error)
	ExportWeek(ctx context.Context, request *requests.ExportWeek) (*responses.WeekExport, error)
	FindByRange(ctx context.Context, arenaID int64, from, to time.Time) ([]responses.TimesheetEntry, error)
	FindByID(ctx context.Context, timesheetID int64) (*responses.TimesheetEntry, error)
}

// TimesheetRepository returns nil, nil from the Find methods on a miss.
// Insert fails with a ConcurrentModification error when (arena_id,
// timeslot_id) already exists.
type TimesheetRepository interface {
	FindByNaturalKey(ctx context.Context, arenaID int64, slotID string) (*models.TimesheetEntry, error)
	FindByNaturalKeyAndDate(ctx context.Context, arenaID int64, slotID string, scheduledDate time.Time) (*models.TimesheetEntry, error)
	Insert(ctx context.Context, entry *models.TimesheetEntry) (int64, error)
	UpdateCategory(ctx context.Context, timesheetID, categoryID int64) error
	UpdateComment(ctx context.Context, timesheetID int64, comment string) error
	UpdateCategoryAndComment(ctx context.Context, timesheetID, categoryID int64, comment string) error
	FindByDateRange(ctx context.Context, arenaID int64, from, to time.Time) ([]models.TimesheetEntry, error)
	FindDetailByID(ctx context.Context, timesheetID int64) (*models.TimesheetDetail, error)
	FindDetailsByDateRange(ctx context.Context, arenaID int64, from, to time.Time) ([]models.TimesheetDetail, error)
	FindDetailsByDateAndCategory(ctx context.Context, arenaID int64, scheduledDate time.Time, categoryID int64) ([]models.TimesheetDetail, error)
	WithTx(ctx context.Context, fn func(repo TimesheetRepository) error) error
}
