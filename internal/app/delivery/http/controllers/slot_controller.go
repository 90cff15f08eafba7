package controllers

import (
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"arena-scheduler-service/internal/pkg/exceptions"
	"arena-scheduler-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SlotController exposes the pure slot and week helpers. None of its handlers
// touch storage.
type SlotController struct {
	Log *zap.Logger
}

func NewSlotController(logger *zap.Logger) *SlotController {
	return &SlotController{Log: logger}
}

func (ctrl *SlotController) Encode(w http.ResponseWriter, r *http.Request) {
	date, err := utils.ParseQueryDate(r, constvars.QueryParamDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := r.URL.Query()
	id, err := slot.EncodeID(date, query.Get(constvars.QueryParamStart), query.Get(constvars.QueryParamEnd))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EncodeSlotIDSuccessMessage, decodedResponse(id))
}

func (ctrl *SlotController) Decode(w http.ResponseWriter, r *http.Request) {
	id := slot.ID(strings.TrimSpace(chi.URLParam(r, constvars.URLParamSlotID)))
	if !id.Valid() {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidTimeFormat(errors.New("slot id must be 16 digits"), id.String()))
		return
	}
	if _, err := slot.DecodeID(id).Date(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DecodeSlotIDSuccessMessage, decodedResponse(id))
}

// WeekRange serves ?week=&year= with the Monday and Sunday of that ISO week.
func (ctrl *SlotController) WeekRange(w http.ResponseWriter, r *http.Request) {
	week, err := utils.ParseQueryInt(r, constvars.QueryParamWeek)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidWeek(err, week))
		return
	}
	year, err := utils.ParseQueryInt(r, constvars.QueryParamYear)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	monday, sunday, err := slot.WeekRange(week, year)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWeekRangeSuccessMessage, responses.WeekRange{
		Week:      week,
		Year:      year,
		WeekStart: monday.Format(constvars.DateLayout),
		WeekEnd:   sunday.Format(constvars.DateLayout),
	})
}

func decodedResponse(id slot.ID) responses.DecodedSlotID {
	decoded := slot.DecodeID(id)
	date, _ := decoded.Date()
	return responses.DecodedSlotID{
		SlotID:    id.String(),
		Date:      date.Format(constvars.DateLayout),
		StartTime: decoded.Start,
		EndTime:   decoded.End,
		Display:   decoded.Display,
	}
}
