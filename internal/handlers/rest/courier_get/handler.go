package courier_get

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
		logger.NewField("handler", "courier_get"),
	)

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["courier_id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "courier_id: must be an integer")
		return
	}

	courier, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Courier(courier))
}
