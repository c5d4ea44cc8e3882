package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/auth"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/service"
)

type SurveyHandler struct {
	Service service.GACPService
}

func NewSurveyHandler(s service.GACPService) *SurveyHandler {
	return &SurveyHandler{Service: s}
}

// caller returns the authenticated claims or a service.ErrUnauthorized.
func (h *SurveyHandler) caller(c echo.Context) (*auth.Claims, error) {
	claims := auth.FromContext(c)
	if claims == nil {
		return nil, service.ErrUnauthorized
	}
	return claims, nil
}

func bindError() model.ErrorResponse {
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
	}
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
