package handlers

import (
	"errors"
	"net/http"

	"minimalapi/models"
	"minimalapi/services/calendar"
	"minimalapi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkDaysHandler serves the work day endpoints.
type WorkDaysHandler struct {
	Calendar calendar.CalendarService
}

func NewWorkDaysHandler(svc calendar.CalendarService) *WorkDaysHandler {
	return &WorkDaysHandler{Calendar: svc}
}

// GetWorkDaysHandler godoc
// @Summary      Get work days
// @Description  Lists the work days within the given date range
// @ID           GetWorkDays
// @Tags         Generators
// @Accept       json
// @Produce      json
// @Param        range  body      models.DateRange     true  "date range"
// @Success      200    {object}  models.WorkDaysInfo  "work days computed"
// @Failure      400    {object}  models.ApiError      "request failed"
// @Router       /workdays [post]
func (h *WorkDaysHandler) GetWorkDaysHandler(c *gin.Context) {
	var req models.DateRange
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	info, err := h.Calendar.WorkDays(req)
	if err != nil {
		apiErr, ok := toApiError(err)
		if !ok {
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute work days", err.Error())
			return
		}
		utils.RequestLogger(c).Info("rejected date range", zap.Error(err))
		c.JSON(http.StatusBadRequest, apiErr)
		return
	}

	c.JSON(http.StatusOK, info)
}

// workDaysResults is the complete set of answers /workdays2 can give.
type workDaysResults = Results[Ok[models.WorkDaysInfo], BadRequest[models.ApiError]]

// GetWorkDays2Handler godoc
// @Summary      Get work days
// @Description  Lists the work days within the given date range
// @ID           GetWorkDays2
// @Tags         Generators
// @Accept       json
// @Produce      json
// @Param        range  body      models.DateRange     true  "date range"
// @Success      200    {object}  models.WorkDaysInfo  "work days computed"
// @Failure      400    {object}  models.ApiError      "request failed"
// @Router       /workdays2 [post]
func (h *WorkDaysHandler) GetWorkDays2Handler(c *gin.Context) {
	var req models.DateRange
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	res, err := h.workDays(req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute work days", err.Error())
		return
	}
	render(c, res)
}

// workDays answers with one of the two declared results. Errors that are not
// a rejected date range are returned as is.
func (h *WorkDaysHandler) workDays(req models.DateRange) (workDaysResults, error) {
	info, err := h.Calendar.WorkDays(req)
	if err != nil {
		apiErr, ok := toApiError(err)
		if !ok {
			return workDaysResults{}, err
		}
		return Second[Ok[models.WorkDaysInfo]](BadRequest[models.ApiError]{Value: apiErr}), nil
	}
	return First[Ok[models.WorkDaysInfo], BadRequest[models.ApiError]](Ok[models.WorkDaysInfo]{Value: info}), nil
}

// toApiError maps a rejected date range to its client payload.
func toApiError(err error) (models.ApiError, bool) {
	var orderErr *calendar.DateOrderingError
	if !errors.As(err, &orderErr) {
		return models.ApiError{}, false
	}
	return models.ApiError{Code: orderErr.Code, Message: orderErr.Message}, true
}
