package controllers

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CategoryController struct {
	Log             *zap.Logger
	CategoryUsecase contracts.CategoryUsecase
	InternalConfig  *config.InternalConfig
}

func NewCategoryController(logger *zap.Logger, categoryUsecase contracts.CategoryUsecase, internalConfig *config.InternalConfig) *CategoryController {
	return &CategoryController{
		Log:             logger,
		CategoryUsecase: categoryUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *CategoryController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.CategoryUsecase.FindAll(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCategorySuccessMessage, response)
}

func (ctrl *CategoryController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	categoryID, err := utils.ParseURLParamInt64(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CategoryUsecase.FindByID(ctx, categoryID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCategorySuccessMessage, response)
}
