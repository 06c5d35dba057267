package room

import (
	"kmc/infras/otel"
	"kmc/internal/domains/room/model"
	"kmc/internal/domains/room/model/dto"
	"kmc/internal/domains/room/service"
	"kmc/shared"
	"kmc/shared/constant"
	"kmc/shared/validator"
	"kmc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{roomNo}", handler.GetRoom)
		routerGroup.Put("/{roomNo}/checks", handler.SaveChecks)
		routerGroup.Post("/{roomNo}/checks/{flag}/toggle", handler.ToggleCheck)
	})
}

// GetRooms lists rooms in use with their occupancy on a date.
// @Summary List rooms
// @Description Rooms in use ordered by number, matched against reservations active on the date.
// @Tags Room
// @Produce json
// @Param date query string false "Date (YYYYMMDD or YYYY-MM-DD), defaults to today"
// @Param status query string false "Room status code" Enums(Z, C, T, G)
// @Param occupancy query string false "Occupancy filter" Enums(occupied, vacant)
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	query := request.URL.Query()

	req := dto.ListRoomsRequest{
		Date:      query.Get(constant.RequestParamDate),
		Status:    query.Get(constant.RequestParamStatus),
		Occupancy: query.Get(constant.RequestParamOccupancy),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(writer, err)

		return
	}

	rooms, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// GetRoom returns a room's checks and the guest staying on a date.
// @Summary Get room detail
// @Tags Room
// @Produce json
// @Param roomNo path string true "Room number"
// @Param date query string false "Date (YYYYMMDD or YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.RoomDetailResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNo} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	roomNo := chi.URLParam(request, constant.RequestParamRoomNo)
	date := request.URL.Query().Get(constant.RequestParamDate)

	room, err := handler.service.Detail(ctx, roomNo, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_no", roomNo).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// SaveChecks stores an explicit set of checks; the status is derived from them.
// @Summary Save room checks
// @Tags Room
// @Accept json
// @Produce json
// @Param roomNo path string true "Room number"
// @Param request body dto.SaveChecksRequest true "Room checks"
// @Success 200 {object} dto.RoomStateResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNo}/checks [put]
// @Security BearerAuth
func (handler *Handler) SaveChecks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveChecks")
	defer scope.End()

	roomNo := chi.URLParam(request, constant.RequestParamRoomNo)

	req := dto.SaveChecksRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	state, err := handler.service.SaveChecks(ctx, roomNo, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_no", roomNo).Msg("failed to save room checks")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room " + roomNo + " checks saved by " + shared.CurrentUser(ctx))

	response.WithJSON(writer, http.StatusOK, state)
}

// ToggleCheck flips one check and applies the cascade.
// @Summary Toggle a room check
// @Tags Room
// @Produce json
// @Param roomNo path string true "Room number"
// @Param flag path string true "Check name" Enums(cleaning, equipment, inspection)
// @Success 200 {object} dto.RoomStateResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{roomNo}/checks/{flag}/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleCheck(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleCheck")
	defer scope.End()

	roomNo := chi.URLParam(request, constant.RequestParamRoomNo)
	flag := model.Flag(chi.URLParam(request, constant.RequestParamFlag))

	state, err := handler.service.ToggleFlag(ctx, roomNo, flag)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_no", roomNo).Str("flag", string(flag)).Msg("failed to toggle room check")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room " + roomNo + " " + string(flag) + " toggled by " + shared.CurrentUser(ctx))

	response.WithJSON(writer, http.StatusOK, state)
}
