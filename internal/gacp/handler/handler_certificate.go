package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// GetCertificates handles GET /api/v1/certificates
func (h *SurveyHandler) GetCertificates(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListCertificatesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	page, err := h.Service.ListCertificates(c.Request().Context(), claims.UserID, claims.Role, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, page)
}

// GetCertificate handles GET /api/v1/certificates/:id
func (h *SurveyHandler) GetCertificate(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	cert, err := h.Service.GetCertificate(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, cert)
}

// GetCertificateVerify handles GET /api/v1/certificates/verify/:number.
// Public endpoint: buyers and regulators check certificates without accounts.
func (h *SurveyHandler) GetCertificateVerify(c echo.Context) error {
	result, err := h.Service.VerifyCertificate(c.Request().Context(), c.Param("number"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PostCertificateRevoke handles POST /api/v1/certificates/:id/revoke
func (h *SurveyHandler) PostCertificateRevoke(c echo.Context) error {
	claims, err := h.caller(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.RevokeCertificateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bindError())
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	cert, err := h.Service.RevokeCertificate(c.Request().Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, cert)
}
