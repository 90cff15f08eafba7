package categories

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
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

type categoryUsecase struct {
	CategoryRepository contracts.CategoryRepository
	RedisRepository    contracts.RedisRepository
	CapabilityChecker  contracts.CapabilityChecker
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	categoryUsecaseInstance contracts.CategoryUsecase
	onceCategoryUsecase     sync.Once
)

func NewCategoryUsecase(
	categoryPostgresRepository contracts.CategoryRepository,
	redisRepository contracts.RedisRepository,
	capabilityChecker contracts.CapabilityChecker,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CategoryUsecase {
	onceCategoryUsecase.Do(func() {
		instance := &categoryUsecase{
			CategoryRepository: categoryPostgresRepository,
			RedisRepository:    redisRepository,
			CapabilityChecker:  capabilityChecker,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		categoryUsecaseInstance = instance
	})
	return categoryUsecaseInstance
}

func (uc *categoryUsecase) FindAll(ctx context.Context) ([]responses.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("categoryUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var categories []models.Category

	categoryRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCategoryList)
	if err != nil {
		uc.Log.Warn("categoryUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if categoryRedisData != "" && json.Unmarshal([]byte(categoryRedisData), &categories) == nil {
		uc.Log.Info("categoryUsecase.FindAll data found in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	} else {
		categories, err = uc.CategoryRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("categoryUsecase.FindAll error fetching data from Postgres",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		ttl := time.Duration(uc.InternalConfig.Timesheet.CacheTTLInSeconds) * time.Second
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyCategoryList, categories, ttl)
		if err != nil {
			uc.Log.Warn("categoryUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	limit := uc.CapabilityChecker.CategoryLimit()
	if limit > 0 && len(categories) > limit {
		categories = categories[:limit]
	}

	response := make([]responses.Category, len(categories))
	for i, eachCategory := range categories {
		response[i] = eachCategory.ConvertIntoResponse()
	}

	uc.Log.Info("categoryUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlanKey, uc.CapabilityChecker.Plan()),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *categoryUsecase) FindByID(ctx context.Context, categoryID int64) (*responses.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("categoryUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
	)

	category, err := uc.CategoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		uc.Log.Error("categoryUsecase.FindByID error fetching category",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if category == nil {
		return nil, exceptions.ErrNotFound(errors.New("no category row"), constvars.ResourceCategory)
	}

	response := category.ConvertIntoResponse()
	return &response, nil
}
