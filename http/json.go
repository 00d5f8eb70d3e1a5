package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"solar-agent/service"
)

const maxRequestBodyBytes = 1 << 20

var errUnsupportedMediaType = errors.New("Content-Type must be application/json")

// decodeJSONRequest enforces POST with a JSON body and decodes it into dst.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSONRequest(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	// Validar Content-Type
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, errUnsupportedMediaType.Error(), http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Debug("Error decoding request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v interface{}) {
	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("Error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Error writing response", zap.Error(err))
	}
}

func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCatalog):
		http.Error(w, "no panel configurations available yet", http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("Savings request failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// roundMoney rounds a monetary figure to cents for presentation.
func roundMoney(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
