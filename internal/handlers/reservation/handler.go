package reservation

import (
	"kmc/infras/otel"
	"kmc/internal/domains/reservation/model/dto"
	"kmc/internal/domains/reservation/service"
	"kmc/shared"
	"kmc/shared/constant"
	"kmc/shared/failure"
	"kmc/shared/validator"
	"kmc/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgInvalidSeqNo = "seq_no must be a number"

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/{kmcCd}", handler.GetReservation)
		routerGroup.Patch("/{kmcCd}/{seqNo}", handler.UpdateReservation)
		routerGroup.Put("/{kmcCd}/{seqNo}/status", handler.UpdateStatus)
	})
}

// GetReservations lists the reservations touching a month.
// @Summary List reservations by month
// @Tags Reservation
// @Produce json
// @Param month query string false "Month (YYYYMM), defaults to the current month"
// @Param status query string false "Reservation status" Enums(S, I, O)
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.ListByMonth(ctx, query.Get(constant.RequestParamMonth), query.Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateReservation registers a walk-in or phoned-in reservation.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + res.KmcCd + " created by " + shared.CurrentUser(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservation returns the latest row of a reservation group.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param kmcCd path string true "Reservation code"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{kmcCd} [get]
// @Security BearerAuth
func (handler *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	kmcCd := chi.URLParam(r, constant.RequestParamKmcCd)

	res, err := handler.service.Get(ctx, kmcCd)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kmc_cd", kmcCd).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservation edits the stay details of a reservation.
// @Summary Update a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param kmcCd path string true "Reservation code"
// @Param seqNo path int true "Sequence number"
// @Param request body dto.UpdateReservationRequest true "Changed fields"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{kmcCd}/{seqNo} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	kmcCd := chi.URLParam(r, constant.RequestParamKmcCd)

	seqNo, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamSeqNo))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(msgInvalidSeqNo))

		return
	}

	req := dto.UpdateReservationRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, kmcCd, seqNo, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kmc_cd", kmcCd).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + kmcCd + " updated by " + shared.CurrentUser(ctx))

	response.WithMessage(w, http.StatusOK, "예약 정보가 수정되었습니다.")
}

// UpdateStatus moves a reservation between reserved, checked in and checked out.
// @Summary Update reservation status
// @Tags Reservation
// @Accept json
// @Produce json
// @Param kmcCd path string true "Reservation code"
// @Param seqNo path int true "Sequence number"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{kmcCd}/{seqNo}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	kmcCd := chi.URLParam(r, constant.RequestParamKmcCd)

	seqNo, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamSeqNo))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(msgInvalidSeqNo))

		return
	}

	req := dto.UpdateStatusRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.UpdateStatus(ctx, kmcCd, seqNo, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kmc_cd", kmcCd).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + kmcCd + " moved to " + req.Status + " by " + shared.CurrentUser(ctx))

	response.WithMessage(w, http.StatusOK, "예약 상태가 변경되었습니다.")
}
