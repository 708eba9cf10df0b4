package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/marketmind/internal/usecase"
)

// maxBodyBytes caps request bodies; every payload here is a handful of short strings.
const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SoftErrorResponse is the {error} body returned with HTTP 200 by sentiment and toggle.
type SoftErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func writeSoftError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, SoftErrorResponse{Error: message})
}

// decodeBody reads a JSON body into dst and answers 400 INVALID_JSON on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

func writeUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Code == "VALIDATION_ERROR" {
			status = http.StatusUnprocessableEntity
		}
		writeErrorResponse(w, status, de.Code, de.Message)
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		writeErrorResponse(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
