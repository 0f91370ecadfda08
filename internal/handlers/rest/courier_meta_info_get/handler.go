package courier_meta_info_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/oapi-codegen/runtime"
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
		logger.NewField("handler", "courier_meta_info_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		params     dto.GetCourierMetaInfoParams
		violations []string
	)

	id, err := strconv.ParseInt(mux.Vars(r)["courier_id"], 10, 64)
	if err != nil {
		violations = append(violations, "courier_id: must be an integer")
	}
	err = runtime.BindQueryParameter("form", true, true, "startDate", r.URL.Query(), &params.StartDate)
	if err != nil {
		violations = append(violations, "startDate: required date in YYYY-MM-DD format")
	}
	err = runtime.BindQueryParameter("form", true, true, "endDate", r.URL.Query(), &params.EndDate)
	if err != nil {
		violations = append(violations, "endDate: required date in YYYY-MM-DD format")
	}
	if len(violations) > 0 {
		response.BadRequest(w, h.log, violations...)
		return
	}

	window := entities.DayWindow(params.StartDate.Time, params.EndDate.Time)

	meta, err := h.service.GetCourierMetaInfo(r.Context(), id, window)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	courier := response.Courier(&meta.Courier)
	response.JSON(w, h.log, http.StatusOK, dto.GetCourierMetaInfoResponse{
		CourierId:    courier.CourierId,
		CourierType:  courier.CourierType,
		Regions:      courier.Regions,
		WorkingHours: courier.WorkingHours,
		Rating:       meta.Rating,
		Earnings:     meta.Earnings,
	})
}
