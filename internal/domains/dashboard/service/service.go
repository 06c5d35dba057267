package service

import (
	"context"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/internal/domains/dashboard/model/dto"
	reservationModel "kmc/internal/domains/reservation/model"
	reservationRepo "kmc/internal/domains/reservation/repository"
	roomModel "kmc/internal/domains/room/model"
	roomRepo "kmc/internal/domains/room/repository"
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
	cacheDashboard = constant.CachePrefixDashboard + "get"

	// cleaningHorizonDays bounds the upcoming check-ins that put a dirty room on the cleaning list.
	cleaningHorizonDays = 5
)

type Dashboard interface {
	Get(ctx context.Context, date string) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	rooms        roomRepo.Room
	reservations reservationRepo.Reservation
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(rooms roomRepo.Room, reservations reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		rooms:        rooms,
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, date string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if date == constant.Empty {
		date = timezone.Today()
	}

	date = datefmt.StripDashes(date)
	if !datefmt.ValidYMD(date) {
		return res, failure.BadRequestFromString("date must be YYYYMMDD") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheDashboard, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	res.Date = datefmt.DisplayYMD(date)

	incoming, err := s.reservations.GetAll(ctx, gDto.QueryParams{SortBy: reservationModel.MatchOrder}, gDto.FilterGroup{
		Filters: []any{reservationModel.CheckInOn(date), reservationModel.StatusIn(status.ActiveStatuses...)},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get incoming reservations")

		return res, fmt.Errorf("failed to get incoming reservations: %w", err)
	}

	outgoing, err := s.reservations.GetAll(ctx, gDto.QueryParams{SortBy: reservationModel.FieldCheckOutYmd + ", " + reservationModel.FieldRoomNo}, gDto.FilterGroup{
		Filters: []any{reservationModel.CheckOutOn(date), reservationModel.StatusIn(status.CheckedOut, status.CheckedIn, status.Reserved)},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get outgoing reservations")

		return res, fmt.Errorf("failed to get outgoing reservations: %w", err)
	}

	cleaning, err := s.cleaning(ctx, date)
	if err != nil {
		return res, err
	}

	res.SetIncoming(incoming)
	res.SetOutgoing(outgoing)
	res.SetCleaning(cleaning)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

// cleaning lists rooms still being cleaned that have a guest arriving within the horizon.
func (s *serviceImpl) cleaning(ctx context.Context, date string) ([]reservationModel.Occupancy, error) {
	horizon, err := datefmt.AddDays(date, cleaningHorizonDays)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldRoomNo}, gDto.FilterGroup{
		Filters: []any{roomModel.InUse(), roomModel.WithStatus(status.RoomCleaning)},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms to clean")

		return nil, fmt.Errorf("failed to get rooms to clean: %w", err)
	}

	upcoming, err := s.reservations.GetAll(ctx, gDto.QueryParams{SortBy: reservationModel.MatchOrder}, reservationModel.CheckInBetween(date, horizon))
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming reservations")

		return nil, fmt.Errorf("failed to get upcoming reservations: %w", err)
	}

	return reservationModel.MatchUpcoming(rooms, upcoming), nil
}
