package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/auth"
)

func SetupServer() *echo.Echo {
	e := echo.New()
	return e
}

// withClaims injects authenticated claims the way auth.Middleware would,
// without minting a token.
func withClaims(claims *auth.Claims) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims != nil {
				auth.SetClaims(c, claims)
			}
			return next(c)
		}
	}
}

func farmerClaims(userID string) *auth.Claims {
	return &auth.Claims{UserID: userID, Email: userID + "@example.com", Role: "farmer"}
}

func staffClaims(userID string) *auth.Claims {
	return &auth.Claims{UserID: userID, Email: userID + "@dtam.go.th", Role: "dtam_staff"}
}

func adminClaims(userID string) *auth.Claims {
	return &auth.Claims{UserID: userID, Email: userID + "@dtam.go.th", Role: "dtam_admin"}
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
