package missionary

import (
	"kmc/infras/otel"
	"kmc/internal/domains/missionary/model/dto"
	"kmc/internal/domains/missionary/service"
	"kmc/shared"
	"kmc/shared/constant"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
	"kmc/shared/validator"
	"kmc/transport/http/response"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryKeyword   = "keyword"
	msgInvalidID   = "id must be a number"
	unknownAddress = "unknown"
)

type Handler struct {
	service service.Missionary
	otel    otel.Otel
}

func New(service service.Missionary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/missionaries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMissionaries)
		routerGroup.Post("/", handler.Register)
		routerGroup.Get("/{id}", handler.GetMissionary)
		routerGroup.Post("/{id}/files", handler.UploadFile)
	})
}

// Register stores a missionary with spouse, contact and consent sections.
// @Summary Register a missionary
// @Tags Missionary
// @Accept json
// @Produce json
// @Param request body dto.RegisterMissionaryRequest true "Missionary"
// @Success 201 {object} dto.RegisterMissionaryResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/missionaries [post]
// @Security BearerAuth
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterMissionaryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.IPAddress = clientAddress(r)
	req.UserAgent = r.UserAgent()

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register missionary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Missionary " + strconv.Itoa(res.ID) + " registered by " + shared.CurrentUser(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMissionaries lists registered missionaries.
// @Summary List missionaries
// @Tags Missionary
// @Produce json
// @Param keyword query string false "Name contains"
// @Param page query int false "Page number"
// @Param limit query int false "Rows per page"
// @Param sort_by query string false "Sort column" Enums(name, created)
// @Param sort_dir query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} dto.ListMissionariesResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/missionaries [get]
// @Security BearerAuth
func (handler *Handler) GetMissionaries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMissionaries")
	defer scope.End()

	query := r.URL.Query()

	var paging gDto.QueryParams
	paging.Paginate(r)

	req := dto.ListMissionariesRequest{
		Keyword: query.Get(queryKeyword),
		SortBy:  query.Get(constant.RequestParamSortBy),
		SortDir: query.Get(constant.RequestParamSortDir),
		Page:    paging.Page,
		Limit:   paging.Limit,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list missionaries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMissionary returns every section of a missionary with the uploaded files.
// @Summary Get a missionary
// @Tags Missionary
// @Produce json
// @Param id path int true "Missionary row id"
// @Success 200 {object} dto.MissionaryResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/missionaries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMissionary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMissionary")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(msgInvalidID))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", id).Msg("failed to get missionary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadFile attaches a photo or document to a missionary.
// @Summary Upload a missionary file
// @Description Up to 10MB; images, PDF and Word documents.
// @Tags Missionary
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Missionary row id"
// @Param file_type formData string true "File kind" Enums(photo, spousePhoto, attached, familyPhoto)
// @Param file formData file true "File"
// @Success 201 {object} dto.UploadFileResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/missionaries/{id}/files [post]
// @Security BearerAuth
func (handler *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFile")
	defer scope.End()

	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(msgInvalidID))

		return
	}

	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadFileRequest{
		FileType: r.FormValue(constant.FormFileType),
		File:     fileHeader,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadFile(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", id).Str("file_type", req.FileType).Msg("failed to upload missionary file")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

func clientAddress(r *http.Request) string {
	if r.RemoteAddr == constant.Empty {
		return unknownAddress
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
