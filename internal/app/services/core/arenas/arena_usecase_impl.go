package arenas

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"arena-scheduler-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type arenaUsecase struct {
	ArenaRepository   contracts.ArenaRepository
	RedisRepository   contracts.RedisRepository
	CapabilityChecker contracts.CapabilityChecker
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	arenaUsecaseInstance contracts.ArenaUsecase
	onceArenaUsecase     sync.Once
)

func NewArenaUsecase(
	arenaPostgresRepository contracts.ArenaRepository,
	redisRepository contracts.RedisRepository,
	capabilityChecker contracts.CapabilityChecker,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ArenaUsecase {
	onceArenaUsecase.Do(func() {
		instance := &arenaUsecase{
			ArenaRepository:   arenaPostgresRepository,
			RedisRepository:   redisRepository,
			CapabilityChecker: capabilityChecker,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		arenaUsecaseInstance = instance
	})
	return arenaUsecaseInstance
}

func (uc *arenaUsecase) FindAll(ctx context.Context) ([]responses.Arena, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("arenaUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	arenas, err := uc.findAllCached(ctx, requestID)
	if err != nil {
		return nil, err
	}

	limit := uc.CapabilityChecker.ArenaLimit()
	if limit > 0 && len(arenas) > limit {
		arenas = arenas[:limit]
	}

	response := make([]responses.Arena, len(arenas))
	for i, eachArena := range arenas {
		response[i] = eachArena.ConvertIntoResponse()
	}

	uc.Log.Info("arenaUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlanKey, uc.CapabilityChecker.Plan()),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

// findAllCached reads the active arena list through Redis. A Redis failure is
// logged and the list is served from Postgres.
func (uc *arenaUsecase) findAllCached(ctx context.Context, requestID string) ([]models.Arena, error) {
	var arenas []models.Arena

	arenaRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyArenaList)
	if err != nil {
		uc.Log.Warn("arenaUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if arenaRedisData != "" {
		err = json.Unmarshal([]byte(arenaRedisData), &arenas)
		if err == nil {
			uc.Log.Info("arenaUsecase.FindAll data found in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return arenas, nil
		}
		uc.Log.Warn("arenaUsecase.FindAll error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	arenas, err = uc.ArenaRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("arenaUsecase.FindAll error fetching data from Postgres",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.Timesheet.CacheTTLInSeconds) * time.Second
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyArenaList, arenas, ttl)
	if err != nil {
		uc.Log.Warn("arenaUsecase.FindAll error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return arenas, nil
}

func (uc *arenaUsecase) FindByID(ctx context.Context, arenaID int64) (*responses.Arena, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("arenaUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
	)

	arena, err := uc.findArena(ctx, arenaID)
	if err != nil {
		uc.Log.Error("arenaUsecase.FindByID error fetching arena",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
			zap.Error(err),
		)
		return nil, err
	}

	response := arena.ConvertIntoResponse()
	uc.Log.Info("arenaUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
	)
	return &response, nil
}

// GenerateSlots lays the arena's opening window over date and attaches the
// slot ID of every cell.
func (uc *arenaUsecase) GenerateSlots(ctx context.Context, arenaID int64, date time.Time) (*responses.ArenaSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("arenaUsecase.GenerateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
		zap.String(constvars.LoggingScheduledDateKey, date.Format(constvars.DateLayout)),
	)

	arena, err := uc.findArena(ctx, arenaID)
	if err != nil {
		uc.Log.Error("arenaUsecase.GenerateSlots error fetching arena",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
			zap.Error(err),
		)
		return nil, err
	}
	configured := arena.WithDefaults()

	slots, err := slot.GenerateFromStrings(configured.StartTime, configured.EndTime, configured.IntervalMinutes)
	if err != nil {
		uc.Log.Error("arenaUsecase.GenerateSlots error generating slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.ArenaSlots{
		ArenaID:         arenaID,
		Date:            date.Format(constvars.DateLayout),
		IntervalMinutes: configured.IntervalMinutes,
		Slots:           make([]responses.Slot, len(slots)),
	}
	for i, eachSlot := range slots {
		response.Slots[i] = responses.Slot{
			SlotID:    slot.EncodeSlot(date, eachSlot).String(),
			StartTime: eachSlot.Start.String(),
			EndTime:   eachSlot.End.String(),
			Display:   eachSlot.Display(),
		}
	}

	uc.Log.Info("arenaUsecase.GenerateSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
		zap.Int(constvars.LoggingResponseCountKey, len(response.Slots)),
	)
	return response, nil
}

func (uc *arenaUsecase) findArena(ctx context.Context, arenaID int64) (*models.Arena, error) {
	arena, err := uc.ArenaRepository.FindByID(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	if arena == nil {
		return nil, exceptions.ErrNotFound(errors.New("no arena row"), constvars.ResourceArena)
	}
	return arena, nil
}
