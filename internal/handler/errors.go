package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/api"
	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/middleware"
)

const (
	errorCodeValidation        = "VALIDATION_ERROR"
	errorCodeInvalidTransition = "INVALID_TRANSITION"
	errorCodeNotFound          = "NOT_FOUND"
	errorCodeConflict          = "CONFLICT"
	errorCodeGateway           = "GATEWAY_ERROR"
)

// sendServiceError maps an engine error onto the JSON error contract.
// Client errors echo the message; anything else is logged and hidden.
func (h *Handler) sendServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Code != "" {
		status := http.StatusConflict
		if errors.Is(err, apperrors.ErrEmptyAudience) {
			status = http.StatusUnprocessableEntity
		}
		h.sendError(w, r, status, appErr.Code, appErr.Msg)
		return
	}

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, err.Error())
	case apperrors.KindNotFound:
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, err.Error())
	case apperrors.KindInvalidTransition:
		h.sendError(w, r, http.StatusConflict, errorCodeInvalidTransition, err.Error())
	case apperrors.KindConflict:
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
	case apperrors.KindGateway:
		h.logger.Error("Gateway failure",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("op", op),
			zap.Error(err))
		h.sendError(w, r, http.StatusBadGateway, errorCodeGateway, "Messaging provider rejected the request")
	default:
		h.logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("op", op),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
	}
}

// RequestErrorHandler answers parameter binding failures of the generated
// router with the JSON error contract.
func RequestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCodeValidation,
		Message: err.Error(),
	})
}
