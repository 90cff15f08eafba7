package arenas

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

type arenaPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	arenaPostgresRepositoryInstance contracts.ArenaRepository
	onceArenaPostgresRepository     sync.Once
)

func NewArenaPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ArenaRepository {
	onceArenaPostgresRepository.Do(func() {
		instance := &arenaPostgresRepository{
			DB:  db,
			Log: logger,
		}
		arenaPostgresRepositoryInstance = instance
	})
	return arenaPostgresRepositoryInstance
}

func (repo *arenaPostgresRepository) FindAll(ctx context.Context) ([]models.Arena, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("arenaPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllArenas)
	if err != nil {
		repo.Log.Error("arenaPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	arenas := make([]models.Arena, 0)
	for rows.Next() {
		var model models.Arena
		if err := rows.Scan(
			&model.ID,
			&model.Name,
			&model.IntervalMinutes,
			&model.StartTime,
			&model.EndTime,
			&model.IsDefault,
			&model.Status,
			&model.CreatedAt,
		); err != nil {
			repo.Log.Error("arenaPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		arenas = append(arenas, model)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("arenaPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("arenaPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(arenas)),
	)
	return arenas, nil
}

func (repo *arenaPostgresRepository) FindByID(ctx context.Context, arenaID int64) (*models.Arena, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("arenaPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arenaID),
	)

	var arena models.Arena
	err := repo.DB.QueryRowContext(ctx, queries.GetArenaByID, arenaID).Scan(
		&arena.ID,
		&arena.Name,
		&arena.IntervalMinutes,
		&arena.StartTime,
		&arena.EndTime,
		&arena.IsDefault,
		&arena.Status,
		&arena.CreatedAt,
	)
	if err == sql.ErrNoRows {
		repo.Log.Warn("arenaPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("arenaPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingArenaIDKey, arenaID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("arenaPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingArenaIDKey, arena.ID),
	)
	return &arena, nil
}
