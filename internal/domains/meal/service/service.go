package service

import (
	"context"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/internal/domains/meal/model"
	"kmc/internal/domains/meal/model/dto"
	"kmc/internal/domains/meal/repository"
	reservationModel "kmc/internal/domains/reservation/model"
	reservationRepo "kmc/internal/domains/reservation/repository"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
	"kmc/shared/timezone"
	"kmc/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheListMeal = constant.CachePrefixMeal + "list"

	msgDuplicateMeal = "이미 식사 정보가 등록되었습니다."
	msgEatNumInvalid = "식사 인원을 입력해주세요."

	charsetEUCKR = "; charset=euc-kr"
	charsetUTF8  = "; charset=utf-8"
)

type Meal interface {
	Lookup(ctx context.Context, roomNo string) (dto.LookupResponse, error)
	Save(ctx context.Context, req dto.SaveMealRequest) (dto.SaveMealResponse, error)
	List(ctx context.Context, req dto.ListMealsRequest) (dto.ListMealsResponse, error)
	Export(ctx context.Context, req dto.ExportMealsRequest) (dto.ExportFile, error)
}

type serviceImpl struct {
	repo         repository.Meal
	reservations reservationRepo.Reservation
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	now          func() time.Time
}

func New(repo repository.Meal, reservations reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Meal {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		now:          timezone.Now,
	}
}

func (s *serviceImpl) Lookup(ctx context.Context, roomNo string) (res dto.LookupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = validator.ValidateVar(roomNo, "required,roomno"); err != nil {
		return res, err
	}

	res.RoomNo = roomNo
	res.MaxEatNum = model.MaxEatNum

	filter := reservationModel.ActiveOn(datefmt.ToYMD(s.now()))
	filter.Filters = append(filter.Filters, reservationModel.HoldsRoom(roomNo))

	params := gDto.QueryParams{Limit: 1, SortBy: reservationModel.MatchOrder}

	guests, err := s.reservations.GetAll(ctx, params, filter, reservationModel.FieldKmcCd, reservationModel.FieldUserNm, reservationModel.FieldRoomNo)
	if err != nil {
		log.Error().Err(err).Str("room", roomNo).Msg("failed to look up meal guest")

		return res, fmt.Errorf("failed to look up meal guest: %w", err)
	}

	if len(guests) == 0 {
		res.Mode = dto.LookupModeManual
		res.KmcCd = model.ManualKmcCd

		return res, nil
	}

	res.Mode = dto.LookupModeGuest
	res.KmcCd = guests[0].KmcCd
	res.UserNm = guests[0].UserNm

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveMealRequest) (res dto.SaveMealResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.EatNum <= 0 {
		return res, failure.BadRequestFromString(msgEatNumInvalid) // nolint:wrapcheck
	}

	eatNum, clamped := model.ClampEatNum(req.EatNum)
	now := s.now()

	meal := model.MealLog{
		RoomNo:   req.RoomNo,
		Org:      s.cfg.App.OrgCode,
		MealYmd:  datefmt.ToYMD(now),
		MealTime: datefmt.ToHHMM(now),
		MealCd:   string(model.Classify(now)),
		EatNum:   eatNum,
	}

	if err = s.repo.Insert(ctx, meal); err != nil {
		log.Error().Err(err).Str("room", req.RoomNo).Str("meal", meal.MealCd).Msg("failed to save meal")

		return res, failure.FromDB(err, msgDuplicateMeal) // nolint:wrapcheck
	}

	if req.UserNm != constant.Empty {
		log.Info().Str("room", req.RoomNo).Str("walkIn", req.UserNm).Int("eatNum", eatNum).Msg("walk-in meal recorded")
	}

	res.FromModel(meal, clamped)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CachePrefixMeal)
	}()

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListMealsRequest) (res dto.ListMealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Date = s.orToday(req.Date)

	cacheKey := shared.BuildCacheKey(cacheListMeal, req.Date, req.RoomNo)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meals")

		return res, nil
	}

	logs, err := s.fetch(ctx, req)
	if err != nil {
		return res, err
	}

	res.FromModels(req.Date, logs)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ExportMealsRequest) (res dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Date = s.orToday(req.Date)

	logs, err := s.fetch(ctx, req.ListMealsRequest)
	if err != nil {
		return res, err
	}

	enc := model.ParseEncoding(req.Encoding)

	data, err := model.WriteCSV(logs, enc)
	if err != nil {
		log.Error().Err(err).Str("encoding", string(enc)).Msg("failed to render meal csv")

		return res, fmt.Errorf("failed to render meal csv: %w", err)
	}

	res.FileName = model.CSVFileName(req.Date)
	res.Data = data
	res.ContentType = constant.ContentTypeCSV + charsetUTF8

	if enc == model.EncodingEUCKR {
		res.ContentType = constant.ContentTypeCSV + charsetEUCKR
	}

	return res, nil
}

func (s *serviceImpl) fetch(ctx context.Context, req dto.ListMealsRequest) ([]model.MealLog, error) {
	params := gDto.QueryParams{SortBy: model.FieldMealTime, SortDir: gDto.SortDirAsc}

	logs, err := s.repo.GetAll(ctx, params, model.OnDate(req.Date, req.RoomNo))
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get meals")

		return nil, fmt.Errorf("failed to get meals: %w", err)
	}

	return logs, nil
}

func (s *serviceImpl) orToday(date string) string {
	if date == constant.Empty {
		return datefmt.ToYMD(s.now())
	}

	return datefmt.StripDashes(date)
}
