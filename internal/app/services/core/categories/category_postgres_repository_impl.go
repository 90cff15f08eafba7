package categories

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"arena-scheduler-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"

	"go.uber.org/zap"
)

type categoryPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	categoryPostgresRepositoryInstance contracts.CategoryRepository
	onceCategoryPostgresRepository     sync.Once
)

func NewCategoryPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.CategoryRepository {
	onceCategoryPostgresRepository.Do(func() {
		instance := &categoryPostgresRepository{
			DB:  db,
			Log: logger,
		}
		categoryPostgresRepositoryInstance = instance
	})
	return categoryPostgresRepositoryInstance
}

func (repo *categoryPostgresRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("categoryPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllCategories)
	if err != nil {
		repo.Log.Error("categoryPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var model models.Category
		if err := rows.Scan(&model.ID, &model.Name, &model.Color, &model.TextColor, &model.IsDefault, &model.Status, &model.CreatedAt); err != nil {
			repo.Log.Error("categoryPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		categories = append(categories, model)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("categoryPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("categoryPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(categories)),
	)
	return categories, nil
}

func (repo *categoryPostgresRepository) FindByID(ctx context.Context, categoryID int64) (*models.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("categoryPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
	)

	var category models.Category
	err := repo.DB.QueryRowContext(ctx, queries.GetCategoryByID, categoryID).Scan(
		&category.ID,
		&category.Name,
		&category.Color,
		&category.TextColor,
		&category.IsDefault,
		&category.Status,
		&category.CreatedAt,
	)
	if err == sql.ErrNoRows {
		repo.Log.Warn("categoryPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("categoryPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &category, nil
}
