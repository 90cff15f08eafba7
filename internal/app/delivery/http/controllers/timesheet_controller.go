package controllers

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/requests"
	"arena-scheduler-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type TimesheetController struct {
	Log              *zap.Logger
	TimesheetUsecase contracts.TimesheetUsecase
	InternalConfig   *config.InternalConfig
}

func NewTimesheetController(logger *zap.Logger, timesheetUsecase contracts.TimesheetUsecase, internalConfig *config.InternalConfig) *TimesheetController {
	return &TimesheetController{
		Log:              logger,
		TimesheetUsecase: timesheetUsecase,
		InternalConfig:   internalConfig,
	}
}

// FindByRange serves ?arena_id=&start_date=&end_date=, both dates inclusive.
func (ctrl *TimesheetController) FindByRange(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	arenaID, err := utils.ParseQueryInt64(r, constvars.QueryParamArenaID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	from, err := utils.ParseQueryDate(r, constvars.QueryParamStartDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	to, err := utils.ParseQueryDate(r, constvars.QueryParamEndDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.FindByRange(ctx, arenaID, from, to)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimesheetSuccessMessage, response)
}

func (ctrl *TimesheetController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	timesheetID, err := utils.ParseURLParamInt64(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.FindByID(ctx, timesheetID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimesheetSuccessMessage, response)
}

func (ctrl *TimesheetController) UpsertCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	request := new(requests.UpsertCategory)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.UpsertCategory(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertCategorySuccessMessage, response)
}

func (ctrl *TimesheetController) UpsertComment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	request := new(requests.UpsertComment)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.UpsertComment(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertCommentSuccessMessage, response)
}

// CopyRange takes the slot-addressed form: timeslot_id and end_timeslot.
func (ctrl *TimesheetController) CopyRange(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	request := new(requests.CopyRangeBySlot)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.CopyRangeBySlot(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CopyRangeSuccessMessage, response)
}

func (ctrl *TimesheetController) CopyWeek(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	request := new(requests.CopyWeek)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.CopyWeek(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	message := constvars.CopyWeekSuccessMessage
	if response.Failed > 0 {
		message = constvars.CopyWeekPartialFailureMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *TimesheetController) ExportWeek(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	request := new(requests.ExportWeek)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimesheetUsecase.ExportWeek(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportWeekSuccessMessage, response)
}
