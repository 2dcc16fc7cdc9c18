package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/articlekeeper/internal/server/storage"
	"github.com/iudanet/articlekeeper/internal/validation"
	"github.com/iudanet/articlekeeper/pkg/api"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// decodeJSON читает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// sendStorageError переводит ошибку хранилища в HTTP статус
func sendStorageError(logger *slog.Logger, r *http.Request, w http.ResponseWriter, err error, notFound string) {
	var verr *validation.Error
	switch {
	case errors.Is(err, storage.ErrArticleNotFound):
		sendError(logger, w, notFound, http.StatusNotFound)
	case errors.As(err, &verr):
		sendError(logger, w, verr.Error(), http.StatusBadRequest)
	default:
		logger.ErrorContext(r.Context(), "storage failure",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}
