package timesheets

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/requests"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"arena-scheduler-service/internal/pkg/exceptions"
	"arena-scheduler-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// CopyRange stamps one category over every slot between StartTime and
// EndTime. Entries come back in slot order; an empty range is not an error.
func (uc *timesheetUsecase) CopyRange(ctx context.Context, request *requests.CopyRange) ([]responses.TimesheetEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.CopyRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, request.ArenaID),
		zap.Int64(constvars.LoggingCategoryIDKey, request.CategoryID),
		zap.String(constvars.LoggingScheduledDateKey, request.ScheduledDate),
	)

	err := uc.checkWrite(ctx)
	if err != nil {
		return nil, err
	}

	if request.IntervalMinutes != 0 && !slot.ValidInterval(request.IntervalMinutes) {
		return nil, exceptions.ErrInvalidInterval(nil, request.IntervalMinutes)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	scheduledDate, err := time.Parse(constvars.DateLayout, request.ScheduledDate)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, request.ScheduledDate)
	}
	start, err := slot.ParseClock(request.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := slot.ParseClock(request.EndTime)
	if err != nil {
		return nil, err
	}

	interval := request.IntervalMinutes
	if interval == 0 {
		interval, err = uc.arenaInterval(ctx, request.ArenaID)
		if err != nil {
			return nil, err
		}
	}

	slots, err := slot.Generate(start, end, interval)
	if err != nil {
		return nil, err
	}

	touched := make([]responses.TimesheetEntry, 0)
	for eachSlot := range slots {
		slotID := slot.EncodeSlot(scheduledDate, eachSlot)
		entry, err := upsertCategory(ctx, uc.TimesheetRepository, request.ArenaID, slotID, scheduledDate, request.CategoryID)
		if err != nil {
			uc.Log.Error("timesheetUsecase.CopyRange error upserting slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotIDKey, slotID.String()),
				zap.Int(constvars.LoggingCopiedCountKey, len(touched)),
				zap.Error(err),
			)
			if len(touched) > 0 {
				uc.afterWrite(ctx, request.ArenaID, constvars.EventTimesheetRangeCopied, touched)
			}
			return nil, err
		}
		touched = append(touched, entry.ConvertIntoResponse())
	}

	if len(touched) > 0 {
		uc.afterWrite(ctx, request.ArenaID, constvars.EventTimesheetRangeCopied, touched)
	}

	uc.Log.Info("timesheetUsecase.CopyRange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCopiedCountKey, len(touched)),
	)
	return touched, nil
}

// CopyRangeBySlot runs CopyRange from the start of SlotID to the end of
// EndSlotID, on SlotID's date, and lists the day's cells of that category.
func (uc *timesheetUsecase) CopyRangeBySlot(ctx context.Context, request *requests.CopyRangeBySlot) (*responses.CopyRange, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.CopyRangeBySlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	if request.IntervalMinutes != 0 && !slot.ValidInterval(request.IntervalMinutes) {
		return nil, exceptions.ErrInvalidInterval(nil, request.IntervalMinutes)
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	startSlot := slot.ID(request.SlotID)
	scheduledDate, err := slotDate(startSlot)
	if err != nil {
		return nil, err
	}
	endSlot := slot.ID(request.EndSlotID)
	if _, err := slotDate(endSlot); err != nil {
		return nil, err
	}

	touched, err := uc.CopyRange(ctx, &requests.CopyRange{
		ArenaID:         request.ArenaID,
		CategoryID:      request.CategoryID,
		ScheduledDate:   scheduledDate.Format(constvars.DateLayout),
		StartTime:       slot.DecodeID(startSlot).Start,
		EndTime:         slot.DecodeID(endSlot).End,
		IntervalMinutes: request.IntervalMinutes,
	})
	if err != nil {
		return nil, err
	}

	details, err := uc.TimesheetRepository.FindDetailsByDateAndCategory(ctx, request.ArenaID, scheduledDate, request.CategoryID)
	if err != nil {
		uc.Log.Error("timesheetUsecase.CopyRangeBySlot error listing day",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	day := make([]responses.TimesheetEntry, len(details))
	for i, eachDetail := range details {
		day[i] = eachDetail.ConvertIntoResponse()
	}

	return &responses.CopyRange{Touched: touched, Day: day}, nil
}

// CopyWeek replays one week of an arena onto another week. Each source cell
// keeps its weekday and clock times. Per-cell failures are counted unless the
// copy runs atomically, in which case the first failure aborts and rolls back.
func (uc *timesheetUsecase) CopyWeek(ctx context.Context, request *requests.CopyWeek) (*responses.CopyWeekResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timesheetUsecase.CopyWeek called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, request.ArenaID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	err := uc.checkWrite(ctx)
	if err != nil {
		return nil, err
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	plan, err := planWeekShift(request)
	if err != nil {
		return nil, err
	}

	sources, err := uc.TimesheetRepository.FindByDateRange(ctx, request.ArenaID, plan.sourceStart, plan.sourceEnd)
	if err != nil {
		uc.Log.Error("timesheetUsecase.CopyWeek error reading source week",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("timesheetUsecase.CopyWeek source week loaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWeekDeltaKey, plan.delta),
		zap.Int(constvars.LoggingSourceCountKey, len(sources)),
	)

	result := &responses.CopyWeekResult{
		WeekDelta: plan.delta,
		WeekStart: plan.targetStart.Format(constvars.DateLayout),
		WeekEnd:   plan.targetEnd.Format(constvars.DateLayout),
	}

	if uc.InternalConfig.Timesheet.CopyWeekAtomic {
		err = uc.TimesheetRepository.WithTx(ctx, func(txRepo contracts.TimesheetRepository) error {
			for _, source := range sources {
				if err := copyEntry(ctx, txRepo, source, plan.delta); err != nil {
					uc.Log.Error("timesheetUsecase.CopyWeek aborting atomic copy",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingSlotIDKey, source.SlotID),
						zap.Error(err),
					)
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		result.Copied = len(sources)
	} else {
		for _, source := range sources {
			if err := copyEntry(ctx, uc.TimesheetRepository, source, plan.delta); err != nil {
				uc.Log.Error("timesheetUsecase.CopyWeek error copying slot",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSlotIDKey, source.SlotID),
					zap.Error(err),
				)
				result.Failed++
				continue
			}
			result.Copied++
		}
	}

	if result.Failed == 0 {
		result.Status = 1
	}
	if result.Copied > 0 {
		uc.afterWrite(ctx, request.ArenaID, constvars.EventTimesheetWeekCopied, result)
	}

	uc.Log.Info("timesheetUsecase.CopyWeek completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCopiedCountKey, result.Copied),
		zap.Int(constvars.LoggingFailedCountKey, result.Failed),
	)
	return result, nil
}

type weekShift struct {
	sourceStart time.Time
	sourceEnd   time.Time
	targetStart time.Time
	targetEnd   time.Time
	delta       int
}

// planWeekShift resolves the source and target weeks. The source week number
// is read in the ISO year of SourceWeekStart and the target in Year, so the
// delta stays correct when the copy crosses a year boundary.
func planWeekShift(request *requests.CopyWeek) (*weekShift, error) {
	sourceStart, err := time.Parse(constvars.DateLayout, request.SourceWeekStart)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, request.SourceWeekStart)
	}

	sourceYear, _ := slot.WeekOf(sourceStart)
	year := request.Year
	if year == 0 {
		year = sourceYear
	}

	sourceMonday, _, err := slot.WeekRange(request.SourceWeekNo, sourceYear)
	if err != nil {
		return nil, err
	}
	targetMonday, targetSunday, err := slot.WeekRange(request.TargetWeekNo, year)
	if err != nil {
		return nil, err
	}

	days := int(targetMonday.Sub(sourceMonday).Hours() / 24)
	return &weekShift{
		sourceStart: sourceStart,
		sourceEnd:   sourceStart.AddDate(0, 0, 6),
		targetStart: targetMonday,
		targetEnd:   targetSunday,
		delta:       days / 7,
	}, nil
}

// copyEntry writes source's category and comment into the cell delta weeks
// away, checking for an existing row by (arena, slot id, date) first.
func copyEntry(ctx context.Context, repo contracts.TimesheetRepository, source models.TimesheetEntry, delta int) error {
	sourceID := slot.ID(source.SlotID)
	sourceDate, err := slot.DecodeID(sourceID).Date()
	if err != nil {
		return err
	}

	targetDate := slot.ShiftWeeks(sourceDate, delta)
	targetID := sourceID.WithDate(targetDate)

	existing, err := repo.FindByNaturalKeyAndDate(ctx, source.ArenaID, targetID.String(), targetDate)
	if err != nil {
		return err
	}

	if existing == nil {
		_, err = repo.Insert(ctx, &models.TimesheetEntry{
			ArenaID:       source.ArenaID,
			SlotID:        targetID.String(),
			CategoryID:    source.CategoryID,
			Comment:       source.Comment,
			ScheduledDate: targetDate,
		})
		if err == nil || !exceptions.IsConcurrentModification(err) {
			return err
		}

		existing, err = repo.FindByNaturalKey(ctx, source.ArenaID, targetID.String())
		if err != nil {
			return err
		}
		if existing == nil {
			return exceptions.ErrConcurrentModification(errors.New("row vanished after unique violation"))
		}
	}

	return repo.UpdateCategoryAndComment(ctx, existing.ID, source.CategoryID, source.Comment)
}

func (uc *timesheetUsecase) arenaInterval(ctx context.Context, arenaID int64) (int, error) {
	arena, err := uc.ArenaRepository.FindByID(ctx, arenaID)
	if err != nil {
		return 0, err
	}
	if arena == nil {
		return 0, exceptions.ErrNotFound(errors.New("no arena row"), constvars.ResourceArena)
	}
	return arena.WithDefaults().IntervalMinutes, nil
}
