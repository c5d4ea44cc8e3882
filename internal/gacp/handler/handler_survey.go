package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// PostSurvey handles POST /api/v1/surveys
func (h *SurveyHandler) PostSurvey(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateSurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	survey, err := h.Service.CreateDraft(c.Request().Context(), claims.UserID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, survey)
}

// GetSurveys handles GET /api/v1/surveys
func (h *SurveyHandler) GetSurveys(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListSurveysReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	page, err := h.Service.ListSurveys(c.Request().Context(), claims.UserID, claims.Role, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, page)
}

// GetSurvey handles GET /api/v1/surveys/:id
func (h *SurveyHandler) GetSurvey(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	survey, err := h.Service.GetSurvey(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, survey)
}

// PutSurveyStep handles PUT /api/v1/surveys/:id/steps/:step
func (h *SurveyHandler) PutSurveyStep(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	stepID, err := strconv.Atoi(c.Param("step"))
	if err != nil || stepID < 1 {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "step must be a positive integer"},
		})
	}

	var req model.SaveStepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	survey, err := h.Service.SaveStep(c.Request().Context(), claims.UserID, c.Param("id"), stepID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, survey)
}

// PostSurveySubmit handles POST /api/v1/surveys/:id/submit
func (h *SurveyHandler) PostSurveySubmit(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	survey, err := h.Service.SubmitSurvey(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, survey)
}

// DeleteSurvey handles DELETE /api/v1/surveys/:id
func (h *SurveyHandler) DeleteSurvey(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if err := h.Service.DeleteDraft(c.Request().Context(), claims.UserID, c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetSurveyHistory handles GET /api/v1/surveys/:id/history
func (h *SurveyHandler) GetSurveyHistory(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GetAuditTrailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	page, err := h.Service.GetAuditTrail(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, page)
}
