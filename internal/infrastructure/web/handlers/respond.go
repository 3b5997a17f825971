// Package handlers exposes the HTTP endpoints of the API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/dto"
	"github.com/diegosantosouza/projeto-teste-truther/internal/infrastructure/logging"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.ErrorWithError(ctx, "failed to encode JSON response", err, logging.Fields{
			"status_code": statusCode,
		})
	}
}

// writeError maps an error onto the uniform error body. Unclassified errors
// stay opaque to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := apperrors.StatusOf(err)

	message := "internal server error"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logging.ErrorWithError(ctx, "request failed", err, logging.Fields{
			"status_code": status,
		})
	}

	writeJSON(ctx, w, status, dto.ErrorResponse{Error: message})
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	writeJSON(ctx, w, http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
