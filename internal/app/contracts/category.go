package contracts

import (
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"context"
)

type CategoryUsecase interface {
	FindAll(ctx context.Context) ([]responses.Category, error)
	FindByID(ctx context.Context, categoryID int64) (*responses.Category, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, categoryID int64) (*models.Category, error)
}
