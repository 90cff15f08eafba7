package controllers

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ArenaController struct {
	Log            *zap.Logger
	ArenaUsecase   contracts.ArenaUsecase
	InternalConfig *config.InternalConfig
}

func NewArenaController(logger *zap.Logger, arenaUsecase contracts.ArenaUsecase, internalConfig *config.InternalConfig) *ArenaController {
	return &ArenaController{
		Log:            logger,
		ArenaUsecase:   arenaUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ArenaController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ArenaUsecase.FindAll(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArenaSuccessMessage, response)
}

func (ctrl *ArenaController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	arenaID, err := utils.ParseURLParamInt64(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.ArenaUsecase.FindByID(ctx, arenaID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArenaSuccessMessage, response)
}

// GenerateSlots lists the arena's slots for ?date=YYYY-MM-DD with their ids.
func (ctrl *ArenaController) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	arenaID, err := utils.ParseURLParamInt64(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	date, err := utils.ParseQueryDate(r, constvars.QueryParamDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.ArenaUsecase.GenerateSlots(ctx, arenaID, date)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArenaSlotsSuccessMessage, response)
}
