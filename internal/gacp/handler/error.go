package handler

import (
	"errors"
	"net/http"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/service"
)

// httpError maps service errors to HTTP status and body
func httpError(err error) (int, interface{}) {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return http.StatusBadRequest, model.ErrorResponse{Error: *detail}
	}

	var incomplete *service.IncompleteStepsError
	if errors.As(err, &incomplete) {
		steps := make([]map[string]interface{}, 0, len(incomplete.Steps))
		for _, s := range incomplete.Steps {
			steps = append(steps, map[string]interface{}{
				"id":    s.ID,
				"key":   s.Key,
				"title": s.Title,
			})
		}
		return http.StatusBadRequest, map[string]interface{}{
			"error": map[string]interface{}{
				"code":             "incomplete_steps",
				"message":          "Survey has incomplete steps",
				"incomplete_steps": steps,
			},
		}
	}

	var code string
	var msg string
	var status int

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = "Permission denied"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Record not found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = "Record already exists"
	case errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusConflict
		code = "invalid_transition"
		msg = "Operation not allowed in the current status"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// validationError wraps a Validate() failure into the standard error body.
func validationError(err error) model.ErrorResponse {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}
