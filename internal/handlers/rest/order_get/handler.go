package order_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"lavka/internal/handlers/rest/response"
	"lavka/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["order_id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "order_id: must be an integer")
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Order(order))
}
