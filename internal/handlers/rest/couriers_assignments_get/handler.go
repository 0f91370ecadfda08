package couriers_assignments_get

import (
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"lavka/internal/entities"
	"lavka/internal/generated/dto"
	"lavka/internal/handlers/rest/response"
	"lavka/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "couriers_assignments_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		params     dto.CouriersAssignmentsParams
		violations []string
	)

	err := runtime.BindQueryParameter("form", true, false, "date", r.URL.Query(), &params.Date)
	if err != nil {
		violations = append(violations, "date: must be a date in YYYY-MM-DD format")
	}
	err = runtime.BindQueryParameter("form", true, false, "courier_id", r.URL.Query(), &params.CourierId)
	if err != nil {
		violations = append(violations, "courier_id: must be an integer")
	}
	if len(violations) > 0 {
		response.BadRequest(w, h.log, violations...)
		return
	}

	// без даты берем сегодняшний день по UTC
	date := h.now().UTC()
	if params.Date != nil {
		date = params.Date.Time
	}
	year, month, day := date.Date()
	date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	groups, err := h.service.ListAssignments(r.Context(), date, params.CourierId)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.OrderAssignResponse{
		Date:     openapi_types.Date{Time: date},
		Couriers: couriersToDTO(groups),
	})
}

func couriersToDTO(couriers []entities.CourierGroupOrders) []dto.CouriersGroupOrders {
	res := make([]dto.CouriersGroupOrders, len(couriers))
	for i, c := range couriers {
		groups := make([]dto.GroupOrders, len(c.Groups))
		for j, g := range c.Groups {
			groups[j] = dto.GroupOrders{
				GroupOrderId: g.GroupOrderID,
				Orders:       response.Orders(g.Orders),
			}
		}
		res[i] = dto.CouriersGroupOrders{
			CourierId: c.CourierID,
			Orders:    groups,
		}
	}
	return res
}
