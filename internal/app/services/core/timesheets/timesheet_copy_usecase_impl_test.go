package timesheets

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/requests"
	"arena-scheduler-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyRange_StampsEverySlotInSpan(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2025010608300900", 2, "")
	h.repo.seed(7, "2025010610301100", 2, "")

	entries, err := h.uc.CopyRange(context.Background(), &requests.CopyRange{
		ArenaID:         7,
		CategoryID:      1,
		ScheduledDate:   "2025-01-06",
		StartTime:       "09:00",
		EndTime:         "10:30",
		IntervalMinutes: 30,
	})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "2025010609000930", entries[0].SlotID)
	assert.Equal(t, "2025010609301000", entries[1].SlotID)
	assert.Equal(t, "2025010610001030", entries[2].SlotID)
	for _, entry := range entries {
		assert.Equal(t, int64(1), entry.CategoryID)
	}

	assert.Equal(t, int64(2), h.repo.byKey(7, "2025010608300900").CategoryID)
	assert.Equal(t, int64(2), h.repo.byKey(7, "2025010610301100").CategoryID)
	assert.Equal(t, 5, h.repo.count(7))
	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, constvars.EventTimesheetRangeCopied, h.publisher.events[0].eventType)
}

func TestCopyRange_EmptyRangeIsNotAnError(t *testing.T) {
	h := newTestHarness()

	entries, err := h.uc.CopyRange(context.Background(), &requests.CopyRange{
		ArenaID:         7,
		CategoryID:      1,
		ScheduledDate:   "2025-01-06",
		StartTime:       "10:00",
		EndTime:         "09:00",
		IntervalMinutes: 30,
	})

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, h.repo.count(7))
	assert.Empty(t, h.publisher.events)
}

func TestCopyRange_UnsupportedInterval(t *testing.T) {
	h := newTestHarness()

	_, err := h.uc.CopyRange(context.Background(), &requests.CopyRange{
		ArenaID:         7,
		CategoryID:      1,
		ScheduledDate:   "2025-01-06",
		StartTime:       "09:00",
		EndTime:         "10:00",
		IntervalMinutes: 20,
	})

	require.Error(t, err)
	assert.True(t, exceptions.IsInvalidInterval(err))
}

func TestCopyRange_DefaultsToArenaInterval(t *testing.T) {
	h := newTestHarness()

	entries, err := h.uc.CopyRange(context.Background(), &requests.CopyRange{
		ArenaID:       8,
		CategoryID:    1,
		ScheduledDate: "2025-01-06",
		StartTime:     "08:00",
		EndTime:       "11:00",
	})

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2025010610001100", entries[2].SlotID)
}

func TestCopyRange_UnknownArena(t *testing.T) {
	h := newTestHarness()

	_, err := h.uc.CopyRange(context.Background(), &requests.CopyRange{
		ArenaID:       99,
		CategoryID:    1,
		ScheduledDate: "2025-01-06",
		StartTime:     "08:00",
		EndTime:       "11:00",
	})

	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestCopyRangeBySlot_UsesSlotBoundaries(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2025010615001530", 1, "")

	result, err := h.uc.CopyRangeBySlot(context.Background(), &requests.CopyRangeBySlot{
		ArenaID:         7,
		CategoryID:      1,
		SlotID:          "2025010609000930",
		EndSlotID:       "2025010610001030",
		IntervalMinutes: 30,
	})
	require.NoError(t, err)

	require.Len(t, result.Touched, 3)
	assert.Equal(t, "2025010609000930", result.Touched[0].SlotID)
	assert.Equal(t, "2025010610001030", result.Touched[2].SlotID)
	assert.Len(t, result.Day, 4)
	assert.Equal(t, "Training", result.Day[0].CategoryName)
}

func TestCopyWeek_ShiftsWithinYear(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2025010609000930", 1, "coach A")
	h.repo.seed(7, "2025011218001900", 2, "")

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    10,
		Year:            2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Status)
	assert.Equal(t, 2, result.Copied)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 8, result.WeekDelta)
	assert.Equal(t, "2025-03-03", result.WeekStart)
	assert.Equal(t, "2025-03-09", result.WeekEnd)

	monday := h.repo.byKey(7, "2025030309000930")
	require.NotNil(t, monday)
	assert.Equal(t, int64(1), monday.CategoryID)
	assert.Equal(t, "coach A", monday.Comment)
	assert.Equal(t, "2025-03-03", monday.ScheduledDate.Format(constvars.DateLayout))

	sunday := h.repo.byKey(7, "2025030918001900")
	require.NotNil(t, sunday)
	assert.Equal(t, int64(2), sunday.CategoryID)
}

func TestCopyWeek_CrossesYearBoundary(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2024122309000930", 1, "")
	h.repo.seed(7, "2024122920002100", 2, "late")

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2024-12-23",
		SourceWeekNo:    52,
		TargetWeekNo:    2,
		Year:            2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Status)
	assert.Equal(t, 2, result.WeekDelta)
	assert.Equal(t, "2025-01-06", result.WeekStart)

	monday := h.repo.byKey(7, "2025010609000930")
	require.NotNil(t, monday)
	assert.Equal(t, "2025-01-06", monday.ScheduledDate.Format(constvars.DateLayout))

	sunday := h.repo.byKey(7, "2025011220002100")
	require.NotNil(t, sunday)
	assert.Equal(t, "late", sunday.Comment)
}

func TestCopyWeek_BackwardsIntoEarlierWeek(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2025030309000930", 1, "")

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-03-03",
		SourceWeekNo:    10,
		TargetWeekNo:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, -8, result.WeekDelta)
	assert.NotNil(t, h.repo.byKey(7, "2025010609000930"))
}

func TestCopyWeek_UpdatesExistingTargetRows(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2025010609000930", 1, "new")
	h.repo.seed(7, "2025011309000930", 2, "old")

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    3,
		Year:            2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Status)
	assert.Equal(t, 2, h.repo.count(7))
	target := h.repo.byKey(7, "2025011309000930")
	assert.Equal(t, int64(1), target.CategoryID)
	assert.Equal(t, "new", target.Comment)
}

func TestCopyWeek_PartialFailureIsCounted(t *testing.T) {
	h := newTestHarness()
	h.repo.seed(7, "2025010609000930", 1, "")
	h.repo.seed(7, "2025010610001030", 1, "")
	h.repo.seed(7, "2025010611001130", 1, "")
	h.repo.failInsert["2025011310001030"] = true

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    3,
		Year:            2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Status)
	assert.Equal(t, 2, result.Copied)
	assert.Equal(t, 1, result.Failed)
	assert.NotNil(t, h.repo.byKey(7, "2025011309000930"))
	assert.Nil(t, h.repo.byKey(7, "2025011310001030"))
	assert.NotNil(t, h.repo.byKey(7, "2025011311001130"))
}

func TestCopyWeek_AtomicRollsBackOnFailure(t *testing.T) {
	h := newTestHarness()
	h.uc.InternalConfig.Timesheet.CopyWeekAtomic = true
	h.repo.seed(7, "2025010609000930", 1, "")
	h.repo.seed(7, "2025010610001030", 1, "")
	h.repo.failInsert["2025011310001030"] = true

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    3,
		Year:            2025,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, exceptions.IsStorage(err))
	assert.Equal(t, 1, h.repo.rollbacks)
	assert.Equal(t, 2, h.repo.count(7))
	assert.Nil(t, h.repo.byKey(7, "2025011309000930"))
	assert.Empty(t, h.publisher.events)
}

func TestCopyWeek_AtomicCommits(t *testing.T) {
	h := newTestHarness()
	h.uc.InternalConfig.Timesheet.CopyWeekAtomic = true
	h.repo.seed(7, "2025010609000930", 1, "")

	result, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    3,
		Year:            2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Status)
	assert.Equal(t, 1, result.Copied)
	assert.Equal(t, 1, h.repo.commits)
}

func TestCopyWeek_InvalidWeek(t *testing.T) {
	h := newTestHarness()

	_, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    54,
	})

	require.Error(t, err)
}

func TestCopyWeek_DeniedByCapability(t *testing.T) {
	h := newTestHarness()
	h.uc.CapabilityChecker = fakeCapability{canWrite: false}
	h.repo.seed(7, "2025010609000930", 1, "")

	_, err := h.uc.CopyWeek(context.Background(), &requests.CopyWeek{
		ArenaID:         7,
		SourceWeekStart: "2025-01-06",
		SourceWeekNo:    2,
		TargetWeekNo:    3,
	})

	require.Error(t, err)
	assert.True(t, exceptions.IsCapabilityDenied(err))
	assert.Equal(t, 1, h.repo.count(7))
}
