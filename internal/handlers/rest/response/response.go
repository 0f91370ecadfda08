package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"lavka/internal/apperr"
	"lavka/internal/generated/dto"
	"lavka/pkg/logger"
)

type Logger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// BadRequest ответ 400 со списком нарушений.
func BadRequest(w http.ResponseWriter, log Logger, violations ...string) {
	JSON(w, log, http.StatusBadRequest, dto.BadRequestResponse{Errors: violations})
}

// Error выбирает код ответа по категории ошибки. Конфликт отдается как 400, так сложилось в контракте API.
func Error(w http.ResponseWriter, log Logger, err error) {
	var validationErr *apperr.ValidationError

	switch {
	case errors.As(err, &validationErr):
		BadRequest(w, log, validationErr.Violations...)
	case errors.Is(err, apperr.ErrInvalid):
		BadRequest(w, log, apperr.Detail(err))
	case errors.Is(err, apperr.ErrNotFound):
		JSON(w, log, http.StatusNotFound, dto.ErrorDetailResponse{Detail: apperr.Detail(err)})
	case errors.Is(err, apperr.ErrConflict):
		JSON(w, log, http.StatusBadRequest, dto.ErrorDetailResponse{Detail: apperr.Detail(err)})
	default:
		log.Error("handle request", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
