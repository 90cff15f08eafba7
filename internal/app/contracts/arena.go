package contracts

import (
	"arena-scheduler-service/internal/app/models"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type ArenaUsecase interface {
	FindAll(ctx context.Context) ([]responses.Arena, error)
	FindByID(ctx context.Context, arenaID int64) (*responses.Arena, error)
	GenerateSlots(ctx context.Context, arenaID int64, date time.Time) (*responses.ArenaSlots, error)
}

type ArenaRepository interface {
	FindAll(ctx context.Context) ([]models.Arena, error)
	FindByID(ctx context.Context, arenaID int64) (*models.Arena, error)
}
