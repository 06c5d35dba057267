package service

import (
	"context"
	"errors"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/infras/s3"
	"kmc/internal/domains/importer/model"
	"kmc/internal/domains/importer/model/dto"
	"kmc/internal/domains/importer/repository"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	"kmc/shared/event"
	"kmc/shared/failure"
	"kmc/shared/timezone"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	deniedFlag = "X"

	msgNoData        = "엑셀 파일에 데이터가 없습니다."
	msgHeaderInvalid = "엑셀 컬럼이 형식과 일치하지 않습니다.\n\n필수 컬럼:\n"
	msgUploadFailed  = "업로드 중 오류가 발생했습니다: "
)

type Importer interface {
	CanUpload(ctx context.Context) (dto.PermissionResponse, error)
	Import(ctx context.Context, fileName string, data []byte) (dto.ImportResponse, error)
	Template(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	repo      repository.Importer
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher event.Publisher
}

func New(repo repository.Importer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, publisher event.Publisher) Importer {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

func (s *serviceImpl) CanUpload(ctx context.Context) (res dto.PermissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CanUpload")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res.Allowed, err = s.allowed(ctx)

	return res, err
}

func (s *serviceImpl) allowed(ctx context.Context) (bool, error) {
	flag, err := s.repo.UploadFlag(ctx, shared.CurrentUser(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to check upload permission")

		return false, fmt.Errorf("failed to check upload permission: %w", err)
	}

	return flag != constant.Empty && flag != deniedFlag, nil
}

func (s *serviceImpl) Import(ctx context.Context, fileName string, data []byte) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(&err)

	allowed, err := s.allowed(ctx)
	if err != nil {
		return res, err
	}

	if !allowed {
		return res, failure.UploadForbiddenError
	}

	sheet, err := model.ReadFirstSheet(fileName, data)
	if err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("unreadable import workbook")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if len(sheet) == 0 || !model.HeaderMatches(sheet[0]) {
		return res, failure.BadRequestFromString(msgHeaderInvalid + strings.Join(model.Header, ", ")) // nolint:wrapcheck
	}

	rows := model.MapRows(sheet[1:])
	if len(rows) == 0 {
		return res, failure.BadRequestFromString(msgNoData) // nolint:wrapcheck
	}

	operator := shared.CurrentUser(ctx)

	if err = s.repo.Replace(ctx, operator, rows); err != nil {
		log.Error().Err(err).Str("operator", operator).Int("rows", len(rows)).Msg("failed to import reservations")

		return res, importFailure(err)
	}

	fileURL := s.archive(ctx, fileName, data)

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Import, operator, event.NewEnvelope(event.TypeImportCompleted, operator, event.ImportCompleted{
		Rows:    len(rows),
		FileURL: fileURL,
	}))

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixReservation)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	return dto.NewImportResponse(len(rows), fileURL), nil
}

func (s *serviceImpl) Template(ctx context.Context) (data []byte, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Template")
	defer scope.End()
	defer scope.TraceIfError(&err)

	data, err = model.Template()
	if err != nil {
		log.Error().Err(err).Msg("failed to build import template")

		return nil, fmt.Errorf("failed to build import template: %w", err)
	}

	return data, nil
}

// archive keeps a copy of the uploaded workbook. Failures are logged and never fail the import.
func (s *serviceImpl) archive(ctx context.Context, fileName string, data []byte) string {
	now := timezone.Now()

	contentType := constant.ContentTypeXLSX
	if strings.EqualFold(filepath.Ext(fileName), ".xls") {
		contentType = constant.ContentTypeXLS
	}

	directory := path.Join(s.cfg.Upload.ImportDirectory, datefmt.ToYMD(now))
	name := strconv.FormatInt(now.UnixMilli(), 10) + "_" + filepath.Base(fileName)

	obj, err := s.s3.UploadFileBytes(ctx, constant.Empty, directory, name, contentType, data)
	if err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("failed to archive import workbook")

		return constant.Empty
	}

	return obj.URL
}

func importFailure(err error) error {
	if errors.Is(err, repository.ErrImportInProgress) {
		return failure.Conflict(repository.ErrImportInProgress.Error())
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return failure.InternalError(errors.New(msgUploadFailed + pqErr.Message))
	}

	return failure.InternalError(errors.New(msgUploadFailed + err.Error()))
}
