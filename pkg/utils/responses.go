package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// MessageResponse is the flat error/info body the legacy frontend expects.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseJSON writes any payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

// ResponseMessage writes {"message": ...} with the given status code.
func ResponseMessage(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, MessageResponse{Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusBadRequest, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseMessage(w, http.StatusInternalServerError, message)
}
