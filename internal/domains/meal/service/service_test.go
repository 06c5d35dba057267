package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kmc/config"
	"kmc/infras/otel/mocks"
	mealMocks "kmc/internal/domains/meal/mocks"
	"kmc/internal/domains/meal/model"
	"kmc/internal/domains/meal/model/dto"
	"kmc/internal/domains/meal/service"
	reservationMocks "kmc/internal/domains/reservation/mocks"
	reservationModel "kmc/internal/domains/reservation/model"
	"kmc/shared/cache"
	cacheMocks "kmc/shared/cache/mocks"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
)

type fixture struct {
	meals        *mealMocks.MockMeal
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Meal
}

func newFixture(t *testing.T, now time.Time) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		meals:        mealMocks.NewMockMeal(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.OrgCode = "K"
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.meals, f.reservations, cfg, f.cache, mocks.NewOtel())
	service.SetClock(f.svc, func() time.Time { return now })

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

var lunchtime = time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)

func TestMealService_Lookup(t *testing.T) {
	t.Run("active guest", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.reservations.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{Limit: 1, SortBy: reservationModel.MatchOrder}, gomock.Any(), gomock.Any()).
			Return([]reservationModel.Reservation{{KmcCd: "AB12CD", UserNm: "김선교", RoomNo: "201,202"}}, nil)

		res, err := f.svc.Lookup(context.Background(), "202")

		require.NoError(t, err)
		assert.Equal(t, dto.LookupModeGuest, res.Mode)
		assert.Equal(t, "AB12CD", res.KmcCd)
		assert.Equal(t, "김선교", res.UserNm)
		assert.Equal(t, model.MaxEatNum, res.MaxEatNum)
	})

	t.Run("no guest falls back to manual entry", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.Lookup(context.Background(), "305")

		require.NoError(t, err)
		assert.Equal(t, dto.LookupModeManual, res.Mode)
		assert.Equal(t, model.ManualKmcCd, res.KmcCd)
		assert.Empty(t, res.UserNm)
	})

	t.Run("room number must be three digits", func(t *testing.T) {
		f := newFixture(t, lunchtime)

		_, err := f.svc.Lookup(context.Background(), "20A")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("backend failure", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := f.svc.Lookup(context.Background(), "305")

		assert.Error(t, err)
	})
}

func TestMealService_Save(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		eatNum      int
		wantCode    string
		wantEatNum  int
		wantWarning bool
	}{
		{name: "lunch", now: lunchtime, eatNum: 3, wantCode: "A", wantEatNum: 3},
		{name: "breakfast", now: time.Date(2025, 10, 15, 7, 5, 0, 0, time.UTC), eatNum: 2, wantCode: "M", wantEatNum: 2},
		{name: "late night", now: time.Date(2025, 10, 15, 22, 0, 0, 0, time.UTC), eatNum: 1, wantCode: "T", wantEatNum: 1},
		{name: "clamped to four", now: lunchtime, eatNum: 7, wantCode: "A", wantEatNum: 4, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)

			var saved model.MealLog
			f.meals.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, meal model.MealLog) error {
					saved = meal

					return nil
				})

			res, err := f.svc.Save(context.Background(), dto.SaveMealRequest{RoomNo: "201", EatNum: tt.eatNum})
			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, saved.MealCd)
			assert.Equal(t, tt.wantEatNum, saved.EatNum)
			assert.Equal(t, "K", saved.Org)
			assert.Equal(t, "20251015", saved.MealYmd)
			assert.Equal(t, tt.now.Format("1504"), saved.MealTime)
			assert.Equal(t, tt.wantWarning, res.Warning != "")
			assert.LessOrEqual(t, res.EatNum, model.MaxEatNum)
		})
	}
}

func TestMealService_SaveRejects(t *testing.T) {
	t.Run("zero diners", func(t *testing.T) {
		f := newFixture(t, lunchtime)

		_, err := f.svc.Save(context.Background(), dto.SaveMealRequest{RoomNo: "201"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("already recorded", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.meals.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "kmc_meal_mgmt_pkey"`})

		_, err := f.svc.Save(context.Background(), dto.SaveMealRequest{RoomNo: "201", EatNum: 2})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "이미 식사 정보가 등록되었습니다.", err.Error())
	})
}

var dayLogs = []model.MealLog{
	{RoomNo: "201", MealYmd: "20251015", MealTime: "0730", MealCd: "M", EatNum: 2},
	{RoomNo: "305", MealYmd: "20251015", MealTime: "1215", MealCd: "A", EatNum: 4},
}

func TestMealService_List(t *testing.T) {
	t.Run("defaults to today", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.cache.EXPECT().Get(gomock.Any(), "meal:list:20251015:", gomock.Any()).Return(cache.Nil)
		f.meals.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldMealTime, SortDir: gDto.SortDirAsc}, model.OnDate("20251015", "")).
			Return(dayLogs, nil)

		res, err := f.svc.List(context.Background(), dto.ListMealsRequest{})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "2025-10-15", res.Date)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 6, res.TotalEatNum)
		assert.Equal(t, "07:30", res.Meals[0].MealTime)
		assert.Equal(t, "조식", res.Meals[0].MealLabel)
	})

	t.Run("filtered by room", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.meals.EXPECT().GetAll(gomock.Any(), gomock.Any(), model.OnDate("20251014", "201")).Return(dayLogs[:1], nil)

		res, err := f.svc.List(context.Background(), dto.ListMealsRequest{Date: "2025-10-14", RoomNo: "201"})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("backend failure", func(t *testing.T) {
		f := newFixture(t, lunchtime)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.meals.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.List(context.Background(), dto.ListMealsRequest{})

		assert.Error(t, err)
	})
}

func TestMealService_Export(t *testing.T) {
	tests := []struct {
		name        string
		encoding    string
		contentType string
		bom         bool
	}{
		{name: "utf-8 by default", contentType: "text/csv; charset=utf-8", bom: true},
		{name: "euc-kr on request", encoding: "euc-kr", contentType: "text/csv; charset=euc-kr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, lunchtime)
			f.meals.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dayLogs, nil)

			req := dto.ExportMealsRequest{ListMealsRequest: dto.ListMealsRequest{Date: "20251015"}, Encoding: tt.encoding}

			file, err := f.svc.Export(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, "식사목록_20251015.csv", file.FileName)
			assert.Equal(t, tt.contentType, file.ContentType)
			assert.Equal(t, tt.bom, bytes.HasPrefix(file.Data, []byte("\ufeff")))
		})
	}
}
