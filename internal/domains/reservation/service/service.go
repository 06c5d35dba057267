package service

import (
	"context"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/internal/domains/reservation/model"
	"kmc/internal/domains/reservation/model/dto"
	"kmc/internal/domains/reservation/repository"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	gDto "kmc/shared/dto"
	"kmc/shared/event"
	"kmc/shared/failure"
	"kmc/shared/status"
	"kmc/shared/timezone"
	"math/rand/v2"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheListReservation = constant.CachePrefixReservation + "month"
	cacheGetReservation  = constant.CachePrefixReservation + "get"

	kmcCdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	kmcCdLength   = 6
	kmcCdAttempts = 5

	sortByCheckIn = model.FieldCheckInYmd
)

type Reservation interface {
	ListByMonth(ctx context.Context, month, statusCd string) (dto.ListReservationsResponse, error)
	Get(ctx context.Context, kmcCd string) (dto.ReservationResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Update(ctx context.Context, kmcCd string, seqNo int, req dto.UpdateReservationRequest) error
	UpdateStatus(ctx context.Context, kmcCd string, seqNo int, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo      repository.Reservation
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher event.Publisher) Reservation {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) ListByMonth(ctx context.Context, month, statusCd string) (res dto.ListReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByMonth")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if month == constant.Empty {
		month = datefmt.YM(timezone.Now())
	}

	if _, err = timezone.Parse(datefmt.LayoutYM, month); err != nil {
		return res, failure.BadRequestFromString("month must be YYYYMM") // nolint:wrapcheck
	}

	statuses := status.ListedStatuses
	if statusCd != constant.Empty {
		st := status.ReservationStatus(statusCd)
		if !st.Valid() {
			return res, failure.BadRequestFromString("unknown reservation status") // nolint:wrapcheck
		}

		statuses = []status.ReservationStatus{st}
	}

	cacheKey := shared.BuildCacheKey(cacheListReservation, month, statusCd)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			model.TouchesMonth(month),
			model.StatusIn(statuses...),
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: sortByCheckIn}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(month, models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, kmcCd string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, kmcCd)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			shared.FilterByID(kmcCd, model.FieldKmcCd, model.TableName),
			model.StatusIn(status.ListedStatuses...),
		},
	}

	// latest stay first
	rows, err := s.repo.GetAll(ctx, gDto.QueryParams{Limit: 1, SortBy: sortByCheckIn, SortDir: gDto.SortDirDesc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if len(rows) == 0 {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(rows[0])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if datefmt.StripDashes(req.CheckOutYmd) < datefmt.StripDashes(req.CheckInYmd) {
		return res, failure.BadRequest(datefmt.ErrRangeReversed) // nolint:wrapcheck
	}

	kmcCd, err := s.newKmcCd(ctx)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	seqNo, err := strconv.Atoi(datefmt.YM(now))
	if err != nil {
		return res, fmt.Errorf("failed to build sequence number: %w", err)
	}

	user := shared.CurrentUser(ctx)
	reservation := req.ToModel(user, kmcCd, seqNo, now)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", failure.FromDB(err, "reservation already exists"))
	}

	s.changed(ctx, event.TypeReservationCreated, user, reservation)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, kmcCd string, seqNo int, req dto.UpdateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	req.Normalize()

	current, err := s.find(ctx, kmcCd, seqNo)
	if err != nil {
		return err
	}

	checkIn, checkOut := current.CheckInYmd, current.CheckOutYmd
	if req.CheckInYmd != constant.Empty {
		checkIn = req.CheckInYmd
	}

	if req.CheckOutYmd != constant.Empty {
		checkOut = req.CheckOutYmd
	}

	if checkOut < checkIn {
		return failure.BadRequest(datefmt.ErrRangeReversed) // nolint:wrapcheck
	}

	user := shared.CurrentUser(ctx)

	updatedFields := shared.TransformFields(req)
	updatedFields[model.FieldUpdDate] = timezone.Now()
	updatedFields[model.FieldUpdID] = user

	if err = s.repo.Update(ctx, updatedFields, model.ByKey(kmcCd, seqNo)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if req.RoomNo != constant.Empty {
		current.RoomNo = req.RoomNo
	}

	s.changed(ctx, event.TypeReservationUpdated, user, current)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, kmcCd string, seqNo int, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !status.ReservationStatus(req.Status).Valid() {
		return failure.BadRequestFromString("unknown reservation status") // nolint:wrapcheck
	}

	current, err := s.find(ctx, kmcCd, seqNo)
	if err != nil {
		return err
	}

	user := shared.CurrentUser(ctx)

	updatedFields := map[string]any{
		model.FieldStatusCd: req.Status,
		model.FieldUpdDate:  timezone.Now(),
		model.FieldUpdID:    user,
	}

	if err = s.repo.Update(ctx, updatedFields, model.ByKey(kmcCd, seqNo)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	current.StatusCd = req.Status
	s.changed(ctx, event.TypeReservationStatusChanged, user, current)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, kmcCd string, seqNo int) (model.Reservation, error) {
	current, err := s.repo.Get(ctx, model.ByKey(kmcCd, seqNo))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return current, fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.KmcCd == constant.Empty {
		return current, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return current, nil
}

func (s *serviceImpl) newKmcCd(ctx context.Context) (string, error) {
	for range kmcCdAttempts {
		code := randomCode()

		exist, err := s.repo.Exist(ctx, shared.FilterByID(code, model.FieldKmcCd, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check reservation code")

			return "", fmt.Errorf("failed to check reservation code: %w", err)
		}

		if !exist {
			return code, nil
		}
	}

	return "", failure.Conflict("could not allocate a reservation code") // nolint:wrapcheck
}

func randomCode() string {
	buf := make([]byte, kmcCdLength)
	for i := range buf {
		buf[i] = kmcCdAlphabet[rand.IntN(len(kmcCdAlphabet))] //nolint:gosec
	}

	return string(buf)
}

// changed fans a reservation write out to the event topic and drops every cache that derives from it.
func (s *serviceImpl) changed(ctx context.Context, eventType, actor string, reservation model.Reservation) {
	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Reservation, reservation.KmcCd, event.NewEnvelope(eventType, actor, event.ReservationChanged{
		KmcCd:  reservation.KmcCd,
		SeqNo:  reservation.SeqNo,
		RoomNo: reservation.RoomNo,
		Status: reservation.StatusCd,
	}))

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixReservation)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}
