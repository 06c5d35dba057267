package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kmc/config"
	"kmc/infras/otel/mocks"
	reservationMocks "kmc/internal/domains/reservation/mocks"
	reservationModel "kmc/internal/domains/reservation/model"
	roomMocks "kmc/internal/domains/room/mocks"
	"kmc/internal/domains/room/model"
	"kmc/internal/domains/room/model/dto"
	"kmc/internal/domains/room/service"
	"kmc/shared/cache"
	cacheMocks "kmc/shared/cache/mocks"
	"kmc/shared/constant"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
)

type fixture struct {
	rooms        *roomMocks.MockRoom
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		rooms:        roomMocks.NewMockRoom(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.rooms, f.reservations, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

var floor = []model.Room{
	{RoomNo: "201", StatusCd: "Z", UseYn: "Y"},
	{RoomNo: "202", StatusCd: "G", ClearChkYn: "Y", BipumChkYn: "Y", InspChkYn: "Y", UseYn: "Y"},
	{RoomNo: "203", StatusCd: "C", ClearChkYn: "Y", UseYn: "Y"},
}

var staying = []reservationModel.Reservation{
	{KmcCd: "A", UserNm: "김선교", RoomNo: "201,202", StatusCd: "I", CheckInYmd: "20251010", CheckOutYmd: "20251020", GuestNum: 2},
}

func TestRoomService_List(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.ListRoomsRequest
		wantRooms    []string
		wantOccupied int
	}{
		{name: "all rooms", req: dto.ListRoomsRequest{Date: "2025-10-15"}, wantRooms: []string{"201", "202", "203"}, wantOccupied: 2},
		{name: "occupied only", req: dto.ListRoomsRequest{Date: "20251015", Occupancy: dto.OccupancyOccupied}, wantRooms: []string{"201", "202"}, wantOccupied: 2},
		{name: "vacant only", req: dto.ListRoomsRequest{Date: "20251015", Occupancy: dto.OccupancyVacant}, wantRooms: []string{"203"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
			f.rooms.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldRoomNo}, gomock.Any()).Return(floor, nil)
			f.reservations.EXPECT().
				GetAll(gomock.Any(), gDto.QueryParams{SortBy: reservationModel.MatchOrder}, reservationModel.ActiveOn("20251015")).
				Return(staying, nil)

			res, err := f.svc.List(context.Background(), tt.req)
			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.Equal(t, "2025-10-15", res.Date)
			assert.Equal(t, tt.wantOccupied, res.Occupied)
			require.Len(t, res.Rooms, len(tt.wantRooms))

			for i, roomNo := range tt.wantRooms {
				assert.Equal(t, roomNo, res.Rooms[i].RoomNo)
			}
		})
	}

	t.Run("status filter is pushed to the query", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.rooms.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{Filters: []any{model.InUse(), model.WithStatus("Z")}}).
			Return(floor[:1], nil)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.List(context.Background(), dto.ListRoomsRequest{Date: "20251015", Status: "Z"})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "청소중", res.Rooms[0].StatusLabel)
		assert.False(t, res.Rooms[0].Occupied)
	})

	t.Run("room query failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.List(context.Background(), dto.ListRoomsRequest{Date: "20251015"})
		assert.Error(t, err)
	})
}

func TestRoomService_Detail(t *testing.T) {
	t.Run("occupied room carries the guest summary", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:detail:202:20251015", gomock.Any()).Return(cache.Nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(floor[1], nil)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(staying, nil)

		res, err := f.svc.Detail(context.Background(), "202", "20251015")
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		require.NotNil(t, res.Guest)
		assert.Equal(t, "김선교", res.Guest.UserNm)
		assert.Equal(t, 2, res.Guest.GuestNum)
		assert.Equal(t, "2025-10-10", res.Guest.CheckInYmd)
		assert.Equal(t, "점검완료", res.StatusLabel)
		assert.Empty(t, res.Info)
	})

	t.Run("vacant room reports no info", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(floor[2], nil)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.Detail(context.Background(), "203", "20251015")
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Nil(t, res.Guest)
		assert.Equal(t, dto.NoGuestInfo, res.Info)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Detail(context.Background(), "999", "20251015")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_ToggleFlag(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "house@kmc.org")

	t.Run("inspection from all N persists G with every flag set", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{RoomNo: "201", ClearChkYn: "N", BipumChkYn: "N", InspChkYn: "N", StatusCd: "Z"}, nil)
		f.rooms.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, columns map[string]any, filter gDto.FilterGroup) error {
				assert.Equal(t, "G", columns["status_cd"])
				assert.Equal(t, "Y", columns["clear_chk_yn"])
				assert.Equal(t, "Y", columns["bipum_chk_yn"])
				assert.Equal(t, "Y", columns["insp_chk_yn"])
				assert.Equal(t, "house@kmc.org", columns["upd_eeno"])
				assert.Len(t, columns["upd_date"], 8)

				where, args := filter.GetWhereClause()
				assert.Equal(t, "(kmc_rooms.room_no = :room_no)", where)
				assert.Equal(t, "201", args["room_no"])

				return nil
			})

		res, err := f.svc.ToggleFlag(ctx, "201", model.FlagInspection)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "G", res.StatusCd)
		assert.Equal(t, model.Flags{Cleaned: true, Equipped: true, Inspected: true}, res.Checks)
	})

	t.Run("unknown flag", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ToggleFlag(ctx, "201", "mop")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("update failure is reported without retry", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{RoomNo: "201"}, nil)
		f.rooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(1)

		_, err := f.svc.ToggleFlag(ctx, "201", model.FlagCleaning)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Equal(t, "update failed", err.Error())
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.ToggleFlag(ctx, "999", model.FlagCleaning)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_SaveChecks(t *testing.T) {
	tests := []struct {
		name   string
		req    dto.SaveChecksRequest
		status string
	}{
		{name: "equipment without cleaning stays Z", req: dto.SaveChecksRequest{Equipped: true}, status: "Z"},
		{name: "cleaned", req: dto.SaveChecksRequest{Cleaned: true}, status: "C"},
		{name: "set up", req: dto.SaveChecksRequest{Cleaned: true, Equipped: true}, status: "T"},
		{name: "inspected wins", req: dto.SaveChecksRequest{Inspected: true}, status: "G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{RoomNo: "301", StatusCd: "C"}, nil)
			f.rooms.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, columns map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, tt.status, columns["status_cd"])

					return nil
				})

			res, err := f.svc.SaveChecks(context.Background(), "301", tt.req)
			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.Equal(t, tt.status, res.StatusCd)
		})
	}
}
