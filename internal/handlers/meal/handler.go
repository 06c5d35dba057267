package meal

import (
	"kmc/infras/otel"
	"kmc/internal/domains/meal/model/dto"
	"kmc/internal/domains/meal/service"
	"kmc/shared/constant"
	"kmc/shared/validator"
	"kmc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryRoomNo = "room_no"

type Handler struct {
	service service.Meal
	otel    otel.Otel
}

func New(service service.Meal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/meals", func(routerGroup chi.Router) {
		routerGroup.Get("/lookup", handler.Lookup)
		routerGroup.Get("/export", handler.Export)
		routerGroup.Get("/", handler.GetMeals)
		routerGroup.Post("/", handler.SaveMeal)
	})
}

// Lookup finds the guest staying in a room right now.
// @Summary Look up the guest of a room
// @Description Falls back to manual mode when no active reservation holds the room.
// @Tags Meal
// @Produce json
// @Param room_no query string true "3 digit room number"
// @Success 200 {object} dto.LookupResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals/lookup [get]
// @Security BearerAuth
func (handler *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Lookup")
	defer scope.End()

	req := dto.LookupRequest{RoomNo: r.URL.Query().Get(queryRoomNo)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Lookup(ctx, req.RoomNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_no", req.RoomNo).Msg("failed to look up meal guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SaveMeal logs a meal for a room at the current server time.
// @Summary Save a meal
// @Description The meal code comes from the server clock; the head count is capped at 4.
// @Tags Meal
// @Accept json
// @Produce json
// @Param request body dto.SaveMealRequest true "Meal"
// @Success 201 {object} dto.SaveMealResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals [post]
// @Security BearerAuth
func (handler *Handler) SaveMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveMeal")
	defer scope.End()

	req := dto.SaveMealRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_no", req.RoomNo).Msg("failed to save meal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meal " + res.MealCd + " saved for room " + res.RoomNo)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMeals lists the meals logged on a date.
// @Summary List meals
// @Tags Meal
// @Produce json
// @Param date query string false "Date (YYYYMMDD or YYYY-MM-DD), defaults to today"
// @Param room_no query string false "3 digit room number"
// @Success 200 {object} dto.ListMealsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals [get]
// @Security BearerAuth
func (handler *Handler) GetMeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeals")
	defer scope.End()

	req := listRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list meals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Export downloads the meals of a date as CSV.
// @Summary Export meals as CSV
// @Description UTF-8 with BOM by default; pass encoding=euc-kr for legacy spreadsheet tools.
// @Tags Meal
// @Produce text/csv
// @Param date query string false "Date (YYYYMMDD or YYYY-MM-DD), defaults to today"
// @Param room_no query string false "3 digit room number"
// @Param encoding query string false "Output encoding" Enums(utf-8, euc-kr)
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals/export [get]
// @Security BearerAuth
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	req := dto.ExportMealsRequest{
		ListMealsRequest: listRequest(r),
		Encoding:         r.URL.Query().Get(constant.RequestParamEncoding),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	file, err := handler.service.Export(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export meals")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.FileName, file.ContentType, file.Data)
}

func listRequest(r *http.Request) dto.ListMealsRequest {
	query := r.URL.Query()

	return dto.ListMealsRequest{
		Date:   query.Get(constant.RequestParamDate),
		RoomNo: query.Get(queryRoomNo),
	}
}
