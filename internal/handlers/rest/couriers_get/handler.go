package couriers_get

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
	"lavka/internal/generated/dto"
	"lavka/internal/handlers/rest/response"
	"lavka/pkg/logger"
)

const (
	defaultOffset = 0
	defaultLimit  = 1
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "couriers_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		params     dto.GetCouriersParams
		violations []string
	)

	err := runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		violations = append(violations, "offset: must be an integer")
	}
	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		violations = append(violations, "limit: must be an integer")
	}
	if len(violations) > 0 {
		response.BadRequest(w, h.log, violations...)
		return
	}

	offset, limit := int32(defaultOffset), int32(defaultLimit)
	if params.Offset != nil {
		offset = *params.Offset
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	couriers, err := h.service.GetCouriers(r.Context(), int(offset), int(limit))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.GetCouriersResponse{
		Couriers: response.Couriers(couriers),
		Limit:    limit,
		Offset:   offset,
	})
}
