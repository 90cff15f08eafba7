package timesheets

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/app/services/shared/ratelimiter"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/requests"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"arena-scheduler-service/internal/pkg/exceptions"
	"arena-scheduler-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type timesheetUsecase struct {
	TimesheetRepository contracts.TimesheetRepository
	ArenaRepository     contracts.ArenaRepository
	RedisRepository     contracts.RedisRepository
	ObjectStorage       contracts.ObjectStorage
	EventPublisher      contracts.EventPublisher
	CapabilityChecker   contracts.CapabilityChecker
	ExportLimiter       *ratelimiter.ResourceLimiter
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	timesheetUsecaseInstance contracts.TimesheetUsecase
	onceTimesheetUsecase     sync.Once
)

type TimesheetUsecaseDeps struct {
	TimesheetRepository contracts.TimesheetRepository
	ArenaRepository     contracts.ArenaRepository
	RedisRepository     contracts.RedisRepository
	ObjectStorage       contracts.ObjectStorage
	EventPublisher      contracts.EventPublisher
	CapabilityChecker   contracts.CapabilityChecker
	ExportLimiter       *ratelimiter.ResourceLimiter
}

func NewTimesheetUsecase(deps TimesheetUsecaseDeps, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.TimesheetUsecase {
	onceTimesheetUsecase.Do(func() {
		instance := &timesheetUsecase{
			TimesheetRepository: deps.TimesheetRepository,
			ArenaRepository:     deps.ArenaRepository,
			RedisRepository:     deps.RedisRepository,
			ObjectStorage:       deps.ObjectStorage,
			EventPublisher:      deps.EventPublisher,
			CapabilityChecker:   deps.CapabilityChecker,
			ExportLimiter:       deps.ExportLimiter,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		timesheetUsecaseInstance = instance
	})
	return timesheetUsecaseInstance
}

func (uc *timesheetUsecase) UpsertCategory(ctx context.Context, request *requests.UpsertCategory) (*responses.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.UpsertCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, request.ArenaID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		zap.Int64(constvars.LoggingCategoryIDKey, request.CategoryID),
	)

	err := uc.checkWrite(ctx)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	slotID := slot.ID(request.SlotID)
	scheduledDate, err := slotDate(slotID)
	if err != nil {
		uc.Log.Error("timesheetUsecase.UpsertCategory invalid slot id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	if request.ScheduledDate != "" && request.ScheduledDate != scheduledDate.Format(constvars.DateLayout) {
		return nil, exceptions.ErrInvalidTimeFormat(
			fmt.Errorf("scheduled date %s disagrees with slot id %s", request.ScheduledDate, request.SlotID),
			request.ScheduledDate,
		)
	}

	entry, err := upsertCategory(ctx, uc.TimesheetRepository, request.ArenaID, slotID, scheduledDate, request.CategoryID)
	if err != nil {
		uc.Log.Error("timesheetUsecase.UpsertCategory error upserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterWrite(ctx, request.ArenaID, constvars.EventTimesheetCategoryUpserted, entry.ConvertIntoResponse())

	response, err := uc.detailOf(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("timesheetUsecase.UpsertCategory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTimesheetIDKey, entry.ID),
	)
	return response, nil
}

func (uc *timesheetUsecase) UpsertComment(ctx context.Context, request *requests.UpsertComment) (*responses.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.UpsertComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, request.ArenaID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	err := uc.checkWrite(ctx)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	entry, err := uc.TimesheetRepository.FindByNaturalKey(ctx, request.ArenaID, request.SlotID)
	if err != nil {
		uc.Log.Error("timesheetUsecase.UpsertComment error finding entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if entry == nil {
		uc.Log.Warn("timesheetUsecase.UpsertComment slot has no category yet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		)
		return nil, exceptions.ErrNotFound(errors.New("comment needs an existing category assignment"), constvars.ResourceTimesheetEntry)
	}

	err = uc.TimesheetRepository.UpdateComment(ctx, entry.ID, request.Comment)
	if err != nil {
		uc.Log.Error("timesheetUsecase.UpsertComment error updating comment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingTimesheetIDKey, entry.ID),
			zap.Error(err),
		)
		return nil, err
	}
	entry.Comment = request.Comment

	uc.afterWrite(ctx, request.ArenaID, constvars.EventTimesheetCommentUpserted, entry.ConvertIntoResponse())

	response, err := uc.detailOf(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("timesheetUsecase.UpsertComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTimesheetIDKey, entry.ID),
	)
	return response, nil
}

// upsertCategory writes categoryID into the (arenaID, slotID) cell. An insert
// that loses a race against the unique key is retried once as an update.
func upsertCategory(ctx context.Context, repo contracts.TimesheetRepository, arenaID int64, slotID slot.ID, scheduledDate time.Time, categoryID int64) (*models.TimesheetEntry, error) {
	existing, err := repo.FindByNaturalKey(ctx, arenaID, slotID.String())
	if err != nil {
		return nil, err
	}

	if existing == nil {
		entry := &models.TimesheetEntry{
			ArenaID:       arenaID,
			SlotID:        slotID.String(),
			CategoryID:    categoryID,
			ScheduledDate: scheduledDate,
		}
		entry.ID, err = repo.Insert(ctx, entry)
		if err == nil {
			return entry, nil
		}
		if !exceptions.IsConcurrentModification(err) {
			return nil, err
		}

		existing, err = repo.FindByNaturalKey(ctx, arenaID, slotID.String())
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrConcurrentModification(errors.New("row vanished after unique violation"))
		}
	}

	err = repo.UpdateCategory(ctx, existing.ID, categoryID)
	if err != nil {
		return nil, err
	}
	existing.CategoryID = categoryID
	return existing, nil
}

// slotDate returns the date encoded in id after checking both clocks.
func slotDate(id slot.ID) (time.Time, error) {
	if !id.Valid() {
		return time.Time{}, exceptions.ErrInvalidTimeFormat(errors.New("slot id must be 16 digits"), id.String())
	}
	decoded := slot.DecodeID(id)
	if _, err := slot.ParseClock(decoded.Start); err != nil {
		return time.Time{}, err
	}
	if _, err := slot.ParseClock(decoded.End); err != nil {
		return time.Time{}, err
	}
	return decoded.Date()
}

func (uc *timesheetUsecase) checkWrite(ctx context.Context) error {
	if uc.CapabilityChecker.CanWrite(ctx) {
		return nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Warn("timesheetUsecase write denied by plan",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlanKey, uc.CapabilityChecker.Plan()),
	)
	return exceptions.ErrCapabilityDenied(nil, uc.CapabilityChecker.Plan())
}

// detailOf re-reads entry joined with its category. A missing join row falls
// back to the bare entry.
func (uc *timesheetUsecase) detailOf(ctx context.Context, entry *models.TimesheetEntry) (*responses.TimesheetEntry, error) {
	detail, err := uc.TimesheetRepository.FindDetailByID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		response := entry.ConvertIntoResponse()
		return &response, nil
	}
	response := detail.ConvertIntoResponse()
	return &response, nil
}

// afterWrite invalidates cached ranges of the arena and publishes the event.
// Neither step can fail the write.
func (uc *timesheetUsecase) afterWrite(ctx context.Context, arenaID int64, eventType string, data interface{}) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	versionKey := fmt.Sprintf(constvars.RedisKeyTimesheetVersionFormat, arenaID)
	if _, err := uc.RedisRepository.Increment(ctx, versionKey); err != nil {
		uc.Log.Warn("timesheetUsecase.afterWrite error bumping cache version",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, versionKey),
			zap.Error(err),
		)
	}

	if uc.EventPublisher == nil {
		return
	}
	event := models.TimesheetEvent{
		ID:         utils.GenerateEventID(),
		Type:       eventType,
		ArenaID:    arenaID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	if err := uc.EventPublisher.Publish(ctx, eventType, event); err != nil {
		uc.Log.Warn("timesheetUsecase.afterWrite error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventType),
			zap.Error(err),
		)
	}
}
