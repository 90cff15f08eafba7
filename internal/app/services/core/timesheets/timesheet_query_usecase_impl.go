package timesheets

import (
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
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const exportLimiterGroup = "week-export"

// FindByRange lists an arena's cells between from and to, inclusive. Results
// are cached under the arena's current version, which every write bumps.
func (uc *timesheetUsecase) FindByRange(ctx context.Context, arenaID int64, from, to time.Time) ([]responses.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.FindByRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
	)

	if to.Before(from) {
		return []responses.TimesheetEntry{}, nil
	}

	cacheKey, cacheable := uc.rangeCacheKey(ctx, arenaID, from, to)
	if cacheable {
		cached, err := uc.RedisRepository.Get(ctx, cacheKey)
		if err != nil {
			uc.Log.Warn("timesheetUsecase.FindByRange error retrieving data from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, cacheKey),
				zap.Error(err),
			)
		}
		if cached != "" {
			var entries []responses.TimesheetEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				uc.Log.Info("timesheetUsecase.FindByRange data found in Redis",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingCacheKey, cacheKey),
				)
				return entries, nil
			}
		}
	}

	details, err := uc.TimesheetRepository.FindDetailsByDateRange(ctx, arenaID, from, to)
	if err != nil {
		uc.Log.Error("timesheetUsecase.FindByRange error fetching data from Postgres",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entries := make([]responses.TimesheetEntry, len(details))
	for i, eachDetail := range details {
		entries[i] = eachDetail.ConvertIntoResponse()
	}

	if cacheable {
		ttl := time.Duration(uc.InternalConfig.Timesheet.CacheTTLInSeconds) * time.Second
		if err := uc.RedisRepository.Set(ctx, cacheKey, entries, ttl); err != nil {
			uc.Log.Warn("timesheetUsecase.FindByRange error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, cacheKey),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("timesheetUsecase.FindByRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(entries)),
	)
	return entries, nil
}

// rangeCacheKey reports false when the version counter cannot be read; the
// range is then served uncached.
func (uc *timesheetUsecase) rangeCacheKey(ctx context.Context, arenaID int64, from, to time.Time) (string, bool) {
	versionKey := fmt.Sprintf(constvars.RedisKeyTimesheetVersionFormat, arenaID)
	raw, err := uc.RedisRepository.Get(ctx, versionKey)
	if err != nil {
		return "", false
	}

	var version int64
	if raw != "" {
		version, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", false
		}
	}

	return fmt.Sprintf(constvars.RedisKeyTimesheetRangeFormat, arenaID, version,
		from.Format(constvars.DateRawLayout), to.Format(constvars.DateRawLayout)), true
}

func (uc *timesheetUsecase) FindByID(ctx context.Context, timesheetID int64) (*responses.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTimesheetIDKey, timesheetID),
	)

	detail, err := uc.TimesheetRepository.FindDetailByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, exceptions.ErrNotFound(errors.New("no timesheet row"), constvars.ResourceTimesheetEntry)
	}

	response := detail.ConvertIntoResponse()
	return &response, nil
}

// ExportWeek writes one ISO week of an arena to object storage as JSON.
func (uc *timesheetUsecase) ExportWeek(ctx context.Context, request *requests.ExportWeek) (*responses.WeekExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.ExportWeek called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, request.ArenaID),
		zap.Int("week", request.Week),
		zap.Int("year", request.Year),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	weekStart, weekEnd, err := slot.WeekRange(request.Week, request.Year)
	if err != nil {
		return nil, err
	}

	if uc.ExportLimiter != nil {
		limit, err := uc.ExportLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      strconv.FormatInt(request.ArenaID, 10),
			LimiterGroupName:  exportLimiterGroup,
			WindowDurationSec: 60,
			MaxQuota:          uc.InternalConfig.Timesheet.ExportQuotaPerMinute,
		})
		if err != nil {
			uc.Log.Warn("timesheetUsecase.ExportWeek limiter unavailable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !limit.Allowed {
			return nil, exceptions.ErrTooManyRequests(nil, limit.RetryAfterSecs)
		}
	}

	details, err := uc.TimesheetRepository.FindDetailsByDateRange(ctx, request.ArenaID, weekStart, weekEnd)
	if err != nil {
		uc.Log.Error("timesheetUsecase.ExportWeek error reading week",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entries := make([]responses.TimesheetEntry, len(details))
	for i, eachDetail := range details {
		entries[i] = eachDetail.ConvertIntoResponse()
	}

	snapshot := models.WeekSnapshot{
		ArenaID:    request.ArenaID,
		Week:       request.Week,
		Year:       request.Year,
		WeekStart:  weekStart.Format(constvars.DateLayout),
		WeekEnd:    weekEnd.Format(constvars.DateLayout),
		ExportedAt: time.Now().UTC(),
		Entries:    entries,
	}
	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucket := uc.InternalConfig.Timesheet.ExportBucket
	objectKey := fmt.Sprintf(constvars.ExportObjectKeyFormat, request.ArenaID, request.Year, request.Week)
	err = uc.ObjectStorage.PutObject(ctx, bucket, objectKey, body, constvars.MIMEApplicationJSON)
	if err != nil {
		uc.Log.Error("timesheetUsecase.ExportWeek error uploading snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("timesheetUsecase.ExportWeek succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
		zap.Int(constvars.LoggingResponseCountKey, len(entries)),
	)
	return &responses.WeekExport{
		ObjectKey: objectKey,
		Bucket:    bucket,
		Entries:   len(entries),
		WeekStart: snapshot.WeekStart,
		WeekEnd:   snapshot.WeekEnd,
	}, nil
}
