package service

import (
	"context"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/infras/s3"
	"kmc/internal/domains/missionary/model"
	"kmc/internal/domains/missionary/model/dto"
	"kmc/internal/domains/missionary/repository"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
	"kmc/shared/timezone"
	"path"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheListMissionary = constant.CachePrefixMissionary + "list"
	cacheGetMissionary  = constant.CachePrefixMissionary + "get"

	msgRegistered      = "사역자 정보가 성공적으로 저장되었습니다."
	msgDuplicateID     = "이미 등록된 사역자 ID입니다."
	msgNotFound        = "missionary not found"
	msgFileTooLarge    = "파일 크기는 10MB를 초과할 수 없습니다."
	msgFileUnsupported = "지원되지 않는 파일 형식입니다. 이미지 파일(JPG, PNG, GIF) 또는 PDF, Word 문서만 업로드 가능합니다."
	msgFileUploaded    = " 파일이 성공적으로 업로드되었습니다."
)

type Missionary interface {
	Register(ctx context.Context, req dto.RegisterMissionaryRequest) (dto.RegisterMissionaryResponse, error)
	List(ctx context.Context, req dto.ListMissionariesRequest) (dto.ListMissionariesResponse, error)
	Get(ctx context.Context, id int) (dto.MissionaryResponse, error)
	UploadFile(ctx context.Context, id int, req dto.UploadFileRequest) (dto.UploadFileResponse, error)
}

type serviceImpl struct {
	repo  repository.Missionary
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Missionary, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Missionary {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterMissionaryRequest) (res dto.RegisterMissionaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(&err)

	registration := req.ToRegistration(timezone.Now())

	if err = registration.Check(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	id, err := s.repo.Register(ctx, registration)
	if err != nil {
		log.Error().Err(err).Str("missionaryId", req.Basic.MissionaryID).Msg("failed to register missionary")

		return res, failure.FromDB(fmt.Errorf("failed to register missionary: %w", err), msgDuplicateID) // nolint:wrapcheck
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CachePrefixMissionary)
	}()

	res.ID = id
	res.Message = msgRegistered

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListMissionariesRequest) (res dto.ListMissionariesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params := listParams(req)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheListMissionary, req.Keyword, params.SortBy, params.SortDir, params.Page, params.Limit)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for missionaries")

		return res, nil
	}

	summaries, total, err := s.repo.List(ctx, params, strings.TrimSpace(req.Keyword))
	if err != nil {
		log.Error().Err(err).Msg("failed to list missionaries")

		return res, fmt.Errorf("failed to list missionaries: %w", err)
	}

	res.FromModels(summaries, total)
	res.Page, res.Limit = params.Page, params.Limit
	res.TotalPage = shared.CalculateTotalPage(total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save missionaries to cache")
		}
	}()

	return res, nil
}

// listParams orders by korean name or registration time, newest first by default.
func listParams(req dto.ListMissionariesRequest) gDto.QueryParams {
	params := gDto.QueryParams{
		Page:    req.Page,
		Limit:   req.Limit,
		SortBy:  model.TableMissionary + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	if req.SortBy == dto.SortByName {
		params.SortBy = model.TableMissionary + "." + model.FieldKoreanName
		params.SortDir = gDto.SortDirAsc
	}

	if req.SortDir != constant.Empty {
		params.SortDir = strings.ToUpper(req.SortDir)
	}

	return params
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.MissionaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetMissionary, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for missionary")

		return res, nil
	}

	detail, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(detail)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save missionary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id int) (model.Detail, error) {
	detail, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get missionary")

		return detail, fmt.Errorf("failed to get missionary: %w", err)
	}

	if detail.Missionary.ID == 0 {
		return detail, failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	return detail, nil
}

// UploadFile stores the attachment first and then its metadata row. When the row
// cannot be written the stored object is removed again.
func (s *serviceImpl) UploadFile(ctx context.Context, id int, req dto.UploadFileRequest) (res dto.UploadFileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadFile")
	defer scope.End()
	defer scope.TraceIfError(&err)

	header := req.File
	mimeType := header.Header.Get(constant.RequestHeaderContentType)

	if header.Size > s.maxFileSize() {
		return res, failure.BadRequestFromString(msgFileTooLarge) // nolint:wrapcheck
	}

	if !model.AllowedMimeType(mimeType) {
		return res, failure.BadRequestFromString(msgFileUnsupported) // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	bucket := s.cfg.Upload.MissionaryBucket
	directory := model.ObjectDirectory(id, req.FileType)
	storedName := model.StoredName(header.Filename, timezone.Now())

	object, err := s.s3.UploadFile(ctx, bucket, directory, storedName, header)
	if err != nil {
		log.Error().Err(err).Int("id", id).Str("fileType", req.FileType).Msg("failed to store missionary file")

		return res, fmt.Errorf("failed to store missionary file: %w", err)
	}

	file := model.FileUpload{
		MissionaryID:     id,
		FileType:         req.FileType,
		OriginalFilename: path.Base(header.Filename),
		StoredFilename:   storedName,
		FilePath:         object.Key,
		FileSize:         header.Size,
		MimeType:         mimeType,
	}

	if err = s.repo.InsertFile(ctx, file); err != nil {
		log.Error().Err(err).Str("key", object.Key).Msg("failed to save missionary file metadata")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), bucket, object.Key); delErr != nil {
			log.Error().Err(delErr).Str("key", object.Key).Msg("failed to remove orphaned missionary file")
		}

		return res, fmt.Errorf("failed to save missionary file metadata: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CachePrefixMissionary)
	}()

	res.FromModel(file)
	res.URL = object.URL
	res.Message = req.FileType + msgFileUploaded

	return res, nil
}

func (s *serviceImpl) maxFileSize() int64 {
	limit := s.cfg.Upload.MaxFileSizeMB
	if limit <= 0 {
		limit = model.MaxFileSizeMB
	}

	return int64(limit) << 20
}
