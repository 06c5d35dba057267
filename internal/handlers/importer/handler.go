package importer

import (
	"io"
	"kmc/infras/otel"
	"kmc/internal/domains/importer/model/dto"
	"kmc/internal/domains/importer/service"
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

const templateFileName = "kmc_upload_template.xlsx"

type Handler struct {
	service service.Importer
	otel    otel.Otel
}

func New(service service.Importer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/imports", func(routerGroup chi.Router) {
		routerGroup.Get("/permission", handler.GetPermission)
		routerGroup.Get("/template", handler.DownloadTemplate)
		routerGroup.Post("/", handler.Upload)
	})
}

// GetPermission reports whether the signed-in admin may run a bulk import.
// @Summary Check import permission
// @Tags Import
// @Produce json
// @Success 200 {object} dto.PermissionResponse
// @Failure 500 {object} response.Error
// @Router /v1/imports/permission [get]
// @Security BearerAuth
func (handler *Handler) GetPermission(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPermission")
	defer scope.End()

	res, err := handler.service.CanUpload(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check import permission")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DownloadTemplate serves an empty workbook with the import header row.
// @Summary Download import template
// @Tags Import
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} response.Error
// @Router /v1/imports/template [get]
// @Security BearerAuth
func (handler *Handler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadTemplate")
	defer scope.End()

	data, err := handler.service.Template(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build import template")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, templateFileName, constant.ContentTypeXLSX, data)
}

// Upload stages a reservation workbook and merges it into the reservations.
// @Summary Upload reservation workbook
// @Description Accepts .xlsx or .xls with the fixed 22-column header. Only one import runs at a time.
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/imports [post]
// @Security BearerAuth
func (handler *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upload")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
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

	req := dto.ImportRequest{File: fileHeader}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded workbook")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Import(ctx, fileHeader.Filename, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("failed to import workbook")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(strconv.Itoa(res.Accepted) + " rows imported by " + shared.CurrentUser(ctx))

	response.WithJSON(w, http.StatusOK, res)
}
