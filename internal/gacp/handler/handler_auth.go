package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// PostRegister handles POST /api/v1/auth/register
func (h *SurveyHandler) PostRegister(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	resp, err := h.Service.Register(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, resp)
}

// PostLogin handles POST /api/v1/auth/login
func (h *SurveyHandler) PostLogin(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	resp, err := h.Service.Login(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, resp)
}

// PostStaffUser handles POST /api/v1/users/staff
func (h *SurveyHandler) PostStaffUser(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateStaffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	user, err := h.Service.CreateStaff(c.Request().Context(), claims.UserID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, user)
}
