package orders_post

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
		logger.NewField("handler", "orders_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.BadRequest(w, h.log, "request body: malformed JSON")
		return
	}

	creates := make([]entities.OrderCreate, len(req.Orders))
	for i, o := range req.Orders {
		creates[i] = entities.OrderCreate{
			Weight:        o.Weight,
			Region:        o.Regions,
			DeliveryHours: o.DeliveryHours,
			Cost:          o.Cost,
		}
	}

	orders, err := h.service.CreateOrders(r.Context(), creates)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Orders(orders))
}
