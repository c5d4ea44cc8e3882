package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// PostSurveyReview handles POST /api/v1/surveys/:id/review
func (h *SurveyHandler) PostSurveyReview(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	survey, err := h.Service.ClaimReview(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, survey)
}

// PostSurveyApprove handles POST /api/v1/surveys/:id/approve
func (h *SurveyHandler) PostSurveyApprove(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ApproveSurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	cert, err := h.Service.ApproveSurvey(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, cert)
}

// PostSurveyReject handles POST /api/v1/surveys/:id/reject
func (h *SurveyHandler) PostSurveyReject(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.RejectSurveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.RejectSurvey(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"), req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// PostSurveyRevision handles POST /api/v1/surveys/:id/revision
func (h *SurveyHandler) PostSurveyRevision(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.RequestRevisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.RequestRevision(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"), req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
