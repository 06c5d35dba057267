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
	"kmc/internal/domains/dashboard/service"
	reservationMocks "kmc/internal/domains/reservation/mocks"
	reservationModel "kmc/internal/domains/reservation/model"
	roomMocks "kmc/internal/domains/room/mocks"
	roomModel "kmc/internal/domains/room/model"
	"kmc/shared/cache"
	cacheMocks "kmc/shared/cache/mocks"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
	"kmc/shared/status"
)

func TestDashboardService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)

	rooms := roomMocks.NewMockRoom(ctrl)
	reservations := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(rooms, reservations, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), "dashboard:get:20251015", gomock.Any()).Return(cache.Nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	incomingFilter := gDto.FilterGroup{Filters: []any{
		reservationModel.CheckInOn("20251015"),
		reservationModel.StatusIn(status.CheckedIn, status.Reserved),
	}}
	outgoingFilter := gDto.FilterGroup{Filters: []any{
		reservationModel.CheckOutOn("20251015"),
		reservationModel.StatusIn(status.CheckedOut, status.CheckedIn, status.Reserved),
	}}

	reservations.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), incomingFilter).
		Return([]reservationModel.Reservation{{KmcCd: "IN", RoomNo: "201", CheckInYmd: "20251015", CheckInHhmm: "1400", StatusCd: "S"}}, nil)
	reservations.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), outgoingFilter).
		Return([]reservationModel.Reservation{{KmcCd: "OUT", RoomNo: "305", CheckOutYmd: "20251015", CheckOutHhmm: "1100", StatusCd: "I"}}, nil)

	rooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{Filters: []any{roomModel.InUse(), roomModel.WithStatus(status.RoomCleaning)}}).
		Return([]roomModel.Room{{RoomNo: "201"}, {RoomNo: "202"}, {RoomNo: "203"}}, nil)
	reservations.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), reservationModel.CheckInBetween("20251015", "20251020")).
		Return([]reservationModel.Reservation{
			{KmcCd: "N1", UserNm: "박선교", RoomNo: "203", CheckInYmd: "20251016"},
			{KmcCd: "N2", UserNm: "이선교", RoomNo: "201", CheckInYmd: "20251018"},
		}, nil)

	res, err := svc.Get(context.Background(), "2025-10-15")
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", res.Date)

	require.Len(t, res.Incoming, 1)
	assert.Equal(t, "14:00", res.Incoming[0].Time)
	assert.Equal(t, "예약", res.Incoming[0].StatusLabel)

	require.Len(t, res.Outgoing, 1)
	assert.Equal(t, "11:00", res.Outgoing[0].Time)

	require.Len(t, res.Cleaning, 2)
	assert.Equal(t, "201", res.Cleaning[0].RoomNo)
	assert.Equal(t, "2025-10-18", res.Cleaning[0].NextCheckIn)
	assert.Equal(t, "203", res.Cleaning[1].RoomNo)
	assert.Equal(t, "박선교", res.Cleaning[1].UserNm)
}

func TestDashboardService_GetErrors(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.New(roomMocks.NewMockRoom(ctrl), reservationMocks.NewMockReservation(ctrl), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

		_, err := svc.Get(context.Background(), "2025-13-40")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reservations := reservationMocks.NewMockReservation(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(roomMocks.NewMockRoom(ctrl), reservations, &config.Config{}, mockCache, mocks.NewOtel())

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := svc.Get(context.Background(), "20251015")
		assert.Error(t, err)
	})
}
