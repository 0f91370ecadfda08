package couriers_post

import (
	"encoding/json"
	"net/http"

	"lavka/internal/entities"
	"lavka/internal/generated/dto"
	"lavka/internal/handlers/rest/response"
	"lavka/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "couriers_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCourierRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.BadRequest(w, h.log, "request body: malformed JSON")
		return
	}

	creates := make([]entities.CourierCreate, len(req.Couriers))
	for i, c := range req.Couriers {
		creates[i] = entities.CourierCreate{
			Type:         entities.CourierType(c.CourierType),
			Regions:      c.Regions,
			WorkingHours: c.WorkingHours,
		}
	}

	couriers, err := h.service.CreateCouriers(r.Context(), creates)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CreateCouriersResponse{
		Couriers: response.Couriers(couriers),
	})
}
