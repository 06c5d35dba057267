package vacation

import (
	"kmc/infras/otel"
	"kmc/internal/domains/vacation/model/dto"
	"kmc/internal/domains/vacation/service"
	"kmc/shared"
	"kmc/shared/constant"
	"kmc/shared/failure"
	"kmc/shared/validator"
	"kmc/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryEmail        = "email"
	msgInvalidReqNo   = "req_no must be a number"
	msgResponseStored = "휴가 신청에 대한 응답이 저장되었습니다."
)

type Handler struct {
	service service.Vacation
	otel    otel.Otel
}

func New(service service.Vacation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vacations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVacations)
		routerGroup.Post("/", handler.Submit)
		routerGroup.Put("/{reqNo}", handler.Resubmit)
		routerGroup.Put("/{reqNo}/response", handler.Respond)
	})
}

// GetVacations lists vacation requests, optionally for one requester.
// @Summary List vacation requests
// @Tags Vacation
// @Produce json
// @Param email query string false "Requester email"
// @Success 200 {object} dto.ListVacationsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vacations [get]
// @Security BearerAuth
func (handler *Handler) GetVacations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVacations")
	defer scope.End()

	req := dto.ListVacationsRequest{Email: r.URL.Query().Get(queryEmail)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list vacations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Submit files a vacation request for the signed-in admin.
// @Summary Submit a vacation request
// @Description Half days need the same start and end date. Days already taken are rejected.
// @Tags Vacation
// @Accept json
// @Produce json
// @Param request body dto.SubmitVacationRequest true "Vacation"
// @Success 201 {object} dto.SubmitVacationResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vacations [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := dto.SubmitVacationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit vacation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vacation " + strconv.Itoa(res.ReqNo) + " submitted by " + shared.CurrentUser(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// Resubmit replaces the days of a request that has not been approved yet.
// @Summary Resubmit a vacation request
// @Tags Vacation
// @Accept json
// @Produce json
// @Param reqNo path int true "Request number"
// @Param request body dto.SubmitVacationRequest true "Vacation"
// @Success 200 {object} dto.SubmitVacationResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vacations/{reqNo} [put]
// @Security BearerAuth
func (handler *Handler) Resubmit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Resubmit")
	defer scope.End()

	reqNo, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamReqNo))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(msgInvalidReqNo))

		return
	}

	req := dto.SubmitVacationRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Resubmit(ctx, reqNo, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("req_no", reqNo).Msg("failed to resubmit vacation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Respond approves or rejects a vacation request.
// @Summary Respond to a vacation request
// @Tags Vacation
// @Accept json
// @Produce json
// @Param reqNo path int true "Request number"
// @Param request body dto.RespondVacationRequest true "Decision"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vacations/{reqNo}/response [put]
// @Security BearerAuth
func (handler *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Respond")
	defer scope.End()

	reqNo, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamReqNo))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(msgInvalidReqNo))

		return
	}

	req := dto.RespondVacationRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Respond(ctx, reqNo, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("req_no", reqNo).Msg("failed to respond to vacation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vacation " + strconv.Itoa(reqNo) + " answered by " + shared.CurrentUser(ctx))

	response.WithMessage(w, http.StatusOK, msgResponseStored)
}
