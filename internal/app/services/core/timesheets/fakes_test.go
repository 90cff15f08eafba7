package timesheets

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// fakeTimesheetRepository keeps rows in memory and enforces the
// (arena_id, timeslot_id) unique key like the real table.
type fakeTimesheetRepository struct {
	mu         sync.Mutex
	nextID     int64
	rows       map[int64]models.TimesheetEntry
	categories map[int64]models.Category

	// failInsert makes Insert of the given slot id fail with a storage error.
	failInsert map[string]bool
	// racedInsert simulates another writer inserting the slot first.
	racedInsert map[string]int64

	calls       map[string]int
	commits     int
	rollbacks   int
	beginTxFail bool
}

func newFakeTimesheetRepository() *fakeTimesheetRepository {
	return &fakeTimesheetRepository{
		rows: make(map[int64]models.TimesheetEntry),
		categories: map[int64]models.Category{
			1: {ID: 1, Name: "Training", Color: "#ff0000", TextColor: "#ffffff"},
			2: {ID: 2, Name: "Match", Color: "#00ff00", TextColor: "#000000"},
		},
		failInsert:  make(map[string]bool),
		racedInsert: make(map[string]int64),
		calls:       make(map[string]int),
	}
}

func (f *fakeTimesheetRepository) seed(arenaID int64, slotID string, categoryID int64, comment string) models.TimesheetEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertLocked(arenaID, slotID, categoryID, comment)
}

func (f *fakeTimesheetRepository) insertLocked(arenaID int64, slotID string, categoryID int64, comment string) models.TimesheetEntry {
	f.nextID++
	date, _ := time.Parse(constvars.DateRawLayout, slotID[:8])
	entry := models.TimesheetEntry{
		ID:            f.nextID,
		ArenaID:       arenaID,
		SlotID:        slotID,
		CategoryID:    categoryID,
		Comment:       comment,
		ScheduledDate: date,
	}
	f.rows[entry.ID] = entry
	return entry
}

func (f *fakeTimesheetRepository) findLocked(arenaID int64, slotID string) *models.TimesheetEntry {
	for _, row := range f.rows {
		if row.ArenaID == arenaID && row.SlotID == slotID {
			found := row
			return &found
		}
	}
	return nil
}

func (f *fakeTimesheetRepository) byKey(arenaID int64, slotID string) *models.TimesheetEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findLocked(arenaID, slotID)
}

func (f *fakeTimesheetRepository) count(arenaID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, row := range f.rows {
		if row.ArenaID == arenaID {
			n++
		}
	}
	return n
}

func (f *fakeTimesheetRepository) FindByNaturalKey(ctx context.Context, arenaID int64, slotID string) (*models.TimesheetEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindByNaturalKey"]++
	return f.findLocked(arenaID, slotID), nil
}

func (f *fakeTimesheetRepository) FindByNaturalKeyAndDate(ctx context.Context, arenaID int64, slotID string, scheduledDate time.Time) (*models.TimesheetEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindByNaturalKeyAndDate"]++
	row := f.findLocked(arenaID, slotID)
	if row == nil || !row.ScheduledDate.Equal(scheduledDate) {
		return nil, nil
	}
	return row, nil
}

func (f *fakeTimesheetRepository) Insert(ctx context.Context, entry *models.TimesheetEntry) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Insert"]++

	if f.failInsert[entry.SlotID] {
		return 0, exceptions.ErrPostgresDBInsertData(errors.New("connection reset by peer"))
	}
	if competitor, ok := f.racedInsert[entry.SlotID]; ok {
		delete(f.racedInsert, entry.SlotID)
		f.insertLocked(entry.ArenaID, entry.SlotID, competitor, "")
	}
	if f.findLocked(entry.ArenaID, entry.SlotID) != nil {
		return 0, exceptions.ErrConcurrentModification(errors.New("duplicate key value violates unique constraint"))
	}
	if entry.SlotID[:8] != entry.ScheduledDate.Format(constvars.DateRawLayout) {
		return 0, exceptions.ErrPostgresDBInsertData(errors.New("check constraint violated"))
	}

	inserted := f.insertLocked(entry.ArenaID, entry.SlotID, entry.CategoryID, entry.Comment)
	return inserted.ID, nil
}

func (f *fakeTimesheetRepository) update(timesheetID int64, apply func(row *models.TimesheetEntry)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[timesheetID]
	if !ok {
		return exceptions.ErrNotFound(errors.New("no rows"), constvars.ResourceTimesheetEntry)
	}
	apply(&row)
	f.rows[timesheetID] = row
	return nil
}

func (f *fakeTimesheetRepository) UpdateCategory(ctx context.Context, timesheetID, categoryID int64) error {
	return f.update(timesheetID, func(row *models.TimesheetEntry) { row.CategoryID = categoryID })
}

func (f *fakeTimesheetRepository) UpdateComment(ctx context.Context, timesheetID int64, comment string) error {
	return f.update(timesheetID, func(row *models.TimesheetEntry) { row.Comment = comment })
}

func (f *fakeTimesheetRepository) UpdateCategoryAndComment(ctx context.Context, timesheetID, categoryID int64, comment string) error {
	return f.update(timesheetID, func(row *models.TimesheetEntry) {
		row.CategoryID = categoryID
		row.Comment = comment
	})
}

func (f *fakeTimesheetRepository) sortedLocked(match func(models.TimesheetEntry) bool) []models.TimesheetEntry {
	entries := make([]models.TimesheetEntry, 0)
	for _, row := range f.rows {
		if match(row) {
			entries = append(entries, row)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].SlotID < entries[j].SlotID })
	return entries
}

func (f *fakeTimesheetRepository) FindByDateRange(ctx context.Context, arenaID int64, from, to time.Time) ([]models.TimesheetEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindByDateRange"]++
	return f.sortedLocked(func(row models.TimesheetEntry) bool {
		return row.ArenaID == arenaID && !row.ScheduledDate.Before(from) && !row.ScheduledDate.After(to)
	}), nil
}

func (f *fakeTimesheetRepository) detailLocked(row models.TimesheetEntry) models.TimesheetDetail {
	category := f.categories[row.CategoryID]
	return models.TimesheetDetail{
		TimesheetEntry:    row,
		CategoryName:      category.Name,
		CategoryColor:     category.Color,
		CategoryTextColor: category.TextColor,
	}
}

func (f *fakeTimesheetRepository) FindDetailByID(ctx context.Context, timesheetID int64) (*models.TimesheetDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[timesheetID]
	if !ok {
		return nil, nil
	}
	detail := f.detailLocked(row)
	return &detail, nil
}

func (f *fakeTimesheetRepository) FindDetailsByDateRange(ctx context.Context, arenaID int64, from, to time.Time) ([]models.TimesheetDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["FindDetailsByDateRange"]++
	rows := f.sortedLocked(func(row models.TimesheetEntry) bool {
		return row.ArenaID == arenaID && !row.ScheduledDate.Before(from) && !row.ScheduledDate.After(to)
	})
	details := make([]models.TimesheetDetail, len(rows))
	for i, row := range rows {
		details[i] = f.detailLocked(row)
	}
	return details, nil
}

func (f *fakeTimesheetRepository) FindDetailsByDateAndCategory(ctx context.Context, arenaID int64, scheduledDate time.Time, categoryID int64) ([]models.TimesheetDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.sortedLocked(func(row models.TimesheetEntry) bool {
		return row.ArenaID == arenaID && row.ScheduledDate.Equal(scheduledDate) && row.CategoryID == categoryID
	})
	details := make([]models.TimesheetDetail, len(rows))
	for i, row := range rows {
		details[i] = f.detailLocked(row)
	}
	return details, nil
}

func (f *fakeTimesheetRepository) WithTx(ctx context.Context, fn func(repo contracts.TimesheetRepository) error) error {
	f.mu.Lock()
	if f.beginTxFail {
		f.mu.Unlock()
		return exceptions.ErrPostgresDBBeginTransaction(errors.New("too many connections"))
	}
	snapshot := make(map[int64]models.TimesheetEntry, len(f.rows))
	for id, row := range f.rows {
		snapshot[id] = row
	}
	nextID := f.nextID
	f.mu.Unlock()

	err := fn(f)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.rows = snapshot
		f.nextID = nextID
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type fakeArenaRepository struct {
	arenas map[int64]models.Arena
}

func (f *fakeArenaRepository) FindAll(ctx context.Context) ([]models.Arena, error) {
	arenas := make([]models.Arena, 0, len(f.arenas))
	for _, arena := range f.arenas {
		arenas = append(arenas, arena)
	}
	return arenas, nil
}

func (f *fakeArenaRepository) FindByID(ctx context.Context, arenaID int64) (*models.Arena, error) {
	arena, ok := f.arenas[arenaID]
	if !ok {
		return nil, nil
	}
	return &arena, nil
}

type fakeRedisRepository struct {
	mu      sync.Mutex
	values  map[string]string
	failAll bool
	gets    map[string]int
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string), gets: make(map[string]int)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return exceptions.ErrRedisSet(errors.New("redis down"))
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets[key]++
	if f.failAll {
		return "", exceptions.ErrRedisGetNoData(errors.New("redis down"), key)
	}
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return 0, exceptions.ErrRedisIncrement(errors.New("redis down"))
	}
	current, _ := strconv.ParseInt(f.values[key], 10, 64)
	current++
	f.values[key] = strconv.FormatInt(current, 10)
	return current, nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return f.Increment(ctx, key)
}

type publishedEvent struct {
	eventType string
	event     models.TimesheetEvent
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	fail   bool
}

func (f *fakeEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("channel closed"), "events")
	}
	event, _ := payload.(models.TimesheetEvent)
	f.events = append(f.events, publishedEvent{eventType: eventType, event: event})
	return nil
}

func (f *fakeEventPublisher) Close() error {
	return nil
}

type storedObject struct {
	bucket      string
	key         string
	body        []byte
	contentType string
}

type fakeObjectStorage struct {
	objects []storedObject
}

func (f *fakeObjectStorage) PutObject(ctx context.Context, bucketName, objectKey string, body []byte, contentType string) error {
	f.objects = append(f.objects, storedObject{bucket: bucketName, key: objectKey, body: body, contentType: contentType})
	return nil
}

type fakeCapability struct {
	canWrite bool
}

func (f fakeCapability) Plan() string {
	if f.canWrite {
		return constvars.PlanPaid
	}
	return constvars.PlanReadOnly
}

func (f fakeCapability) CanWrite(ctx context.Context) bool {
	return f.canWrite
}

func (f fakeCapability) ArenaLimit() int {
	return 0
}

func (f fakeCapability) CategoryLimit() int {
	return 0
}

type testHarness struct {
	uc        *timesheetUsecase
	repo      *fakeTimesheetRepository
	redis     *fakeRedisRepository
	publisher *fakeEventPublisher
	storage   *fakeObjectStorage
}

func newTestHarness() *testHarness {
	h := &testHarness{
		repo:      newFakeTimesheetRepository(),
		redis:     newFakeRedisRepository(),
		publisher: &fakeEventPublisher{},
		storage:   &fakeObjectStorage{},
	}
	h.uc = &timesheetUsecase{
		TimesheetRepository: h.repo,
		ArenaRepository: &fakeArenaRepository{arenas: map[int64]models.Arena{
			7: {ID: 7, Name: "Main Hall", IntervalMinutes: 30, StartTime: "07:00", EndTime: "21:00"},
			8: {ID: 8, Name: "Court B", IntervalMinutes: 60, StartTime: "08:00", EndTime: "20:00"},
		}},
		RedisRepository:   h.redis,
		ObjectStorage:     h.storage,
		EventPublisher:    h.publisher,
		CapabilityChecker: fakeCapability{canWrite: true},
		InternalConfig: &config.InternalConfig{Timesheet: config.Timesheet{
			CacheTTLInSeconds: 60,
			ExportBucket:      "exports",
		}},
		Log: zap.NewNop(),
	}
	return h
}
