package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/auth"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/handler"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/workflow"
)

func RegisterRoutes(e *echo.Echo, h *handler.SurveyHandler, engine *workflow.Engine, jwtSecret string) {
	// Enable CORS for the web frontend
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	// Public routes: account creation, login, certificate verification
	e.POST("/api/v1/auth/register", h.PostRegister)
	e.POST("/api/v1/auth/login", h.PostLogin)
	e.GET("/api/v1/certificates/verify/:number", h.GetCertificateVerify)

	// Authenticated API group
	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)
	v1.Use(auth.Middleware(jwtSecret))

	// Apply permission middleware for role-gated routes
	permMiddleware := handler.NewPermissionMiddleware(engine)
	v1.Use(permMiddleware.Middleware())

	// Survey Routes
	v1.POST("/surveys", h.PostSurvey)
	v1.GET("/surveys", h.GetSurveys)
	v1.GET("/surveys/:id", h.GetSurvey)
	v1.PUT("/surveys/:id/steps/:step", h.PutSurveyStep)
	v1.POST("/surveys/:id/submit", h.PostSurveySubmit)
	v1.DELETE("/surveys/:id", h.DeleteSurvey)
	v1.GET("/surveys/:id/history", h.GetSurveyHistory)

	// Review Routes
	v1.POST("/surveys/:id/review", h.PostSurveyReview)
	v1.POST("/surveys/:id/approve", h.PostSurveyApprove)
	v1.POST("/surveys/:id/reject", h.PostSurveyReject)
	v1.POST("/surveys/:id/revision", h.PostSurveyRevision)

	// Certificate Routes
	v1.GET("/certificates", h.GetCertificates)
	v1.GET("/certificates/:id", h.GetCertificate)
	v1.POST("/certificates/:id/revoke", h.PostCertificateRevoke)

	// User Management Routes
	v1.POST("/users/staff", h.PostStaffUser)
}
