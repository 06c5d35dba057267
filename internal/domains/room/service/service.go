package service

import (
	"context"
	"errors"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	reservationModel "kmc/internal/domains/reservation/model"
	reservationRepo "kmc/internal/domains/reservation/repository"
	"kmc/internal/domains/room/model"
	"kmc/internal/domains/room/model/dto"
	"kmc/internal/domains/room/repository"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
	"kmc/shared/status"
	"kmc/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheListRoom   = constant.CachePrefixRoom + "list"
	cacheDetailRoom = constant.CachePrefixRoom + "detail"
)

var errUpdateFailed = errors.New("update failed")

type Room interface {
	List(ctx context.Context, req dto.ListRoomsRequest) (dto.ListRoomsResponse, error)
	Detail(ctx context.Context, roomNo, date string) (dto.RoomDetailResponse, error)
	ToggleFlag(ctx context.Context, roomNo string, flag model.Flag) (dto.RoomStateResponse, error)
	SaveChecks(ctx context.Context, roomNo string, req dto.SaveChecksRequest) (dto.RoomStateResponse, error)
}

type serviceImpl struct {
	repo         repository.Room
	reservations reservationRepo.Reservation
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Room, reservations reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListRoomsRequest) (res dto.ListRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Date = orToday(req.Date)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListRoom, req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	filter := gDto.FilterGroup{Filters: []any{model.InUse()}}
	if req.Status != constant.Empty {
		filter.Filters = append(filter.Filters, model.WithStatus(status.RoomStatus(req.Status)))
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomNo}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	reservations, err := s.reservations.GetAll(ctx, gDto.QueryParams{SortBy: reservationModel.MatchOrder}, reservationModel.ActiveOn(req.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active reservations")

		return res, fmt.Errorf("failed to get active reservations: %w", err)
	}

	res.Date = datefmt.DisplayYMD(req.Date)
	res.Rooms = []dto.RoomResponse{}

	for _, occupancy := range reservationModel.Match(rooms, reservations, req.Date) {
		if !req.Keep(occupancy.Occupied()) {
			continue
		}

		var room dto.RoomResponse
		room.FromOccupancy(occupancy)

		if room.Occupied {
			res.Occupied++
		}

		res.Rooms = append(res.Rooms, room)
	}

	res.TotalData = len(res.Rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Detail(ctx context.Context, roomNo, date string) (res dto.RoomDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Detail")
	defer scope.End()
	defer scope.TraceIfError(&err)

	date = orToday(date)
	cacheKey := shared.BuildCacheKey(cacheDetailRoom, roomNo, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.find(ctx, roomNo)
	if err != nil {
		return res, err
	}

	filter := reservationModel.ActiveOn(date)
	filter.Filters = append(filter.Filters, reservationModel.HoldsRoom(roomNo))

	reservations, err := s.reservations.GetAll(ctx, gDto.QueryParams{SortBy: reservationModel.MatchOrder}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room reservations")

		return res, fmt.Errorf("failed to get room reservations: %w", err)
	}

	occupancies := reservationModel.Match([]model.Room{room}, reservations, date)
	res.FromOccupancy(date, occupancies[0])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ToggleFlag(ctx context.Context, roomNo string, flag model.Flag) (res dto.RoomStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleFlag")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !flag.Valid() {
		return res, failure.BadRequest(model.ErrUnknownFlag) // nolint:wrapcheck
	}

	room, err := s.find(ctx, roomNo)
	if err != nil {
		return res, err
	}

	flags, err := room.Flags().Toggle(flag)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	return s.persist(ctx, room, flags)
}

func (s *serviceImpl) SaveChecks(ctx context.Context, roomNo string, req dto.SaveChecksRequest) (res dto.RoomStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveChecks")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room, err := s.find(ctx, roomNo)
	if err != nil {
		return res, err
	}

	return s.persist(ctx, room, req.Flags())
}

// persist writes the flags and their derived status in a single update.
func (s *serviceImpl) persist(ctx context.Context, room model.Room, flags model.Flags) (res dto.RoomStateResponse, err error) {
	columns := flags.Columns()
	columns[model.FieldUpdEeno] = shared.CurrentUser(ctx)
	columns[model.FieldUpdDate] = timezone.Today()

	if err = s.repo.Update(ctx, columns, shared.FilterByID(room.RoomNo, model.FieldRoomNo, model.TableName)); err != nil {
		log.Error().Err(err).Str("room", room.RoomNo).Msg("failed to update room checks")

		return res, failure.InternalError(errUpdateFailed) // nolint:wrapcheck
	}

	room.ClearChkYn = status.YN(flags.Cleaned)
	room.BipumChkYn = status.YN(flags.Equipped)
	room.InspChkYn = status.YN(flags.Inspected)
	room.StatusCd = string(model.Derive(flags))

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, roomNo string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(roomNo, model.FieldRoomNo, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomNo == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func orToday(date string) string {
	if date == constant.Empty {
		return timezone.Today()
	}

	return datefmt.StripDashes(date)
}
