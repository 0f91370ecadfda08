package orders_complete_post

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
		logger.NewField("handler", "orders_complete_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteOrderRequestDto
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.BadRequest(w, h.log, "request body: malformed JSON")
		return
	}

	requests := make([]entities.OrderComplete, len(req.CompleteInfo))
	for i, c := range req.CompleteInfo {
		requests[i] = entities.OrderComplete{
			OrderID:      c.OrderId,
			CourierID:    c.CourierId,
			CompleteTime: c.CompleteTime,
		}
	}

	orders, err := h.service.CompleteOrders(r.Context(), requests)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Orders(orders))
}
