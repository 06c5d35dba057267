package model_test

import (
	"bytes"
	"kmc/internal/domains/meal/model"
	"kmc/shared/status"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected status.MealCode
	}{
		{name: "breakfast opens at four", at: at(4, 0), expected: status.MealMorning},
		{name: "breakfast last minute", at: at(9, 59), expected: status.MealMorning},
		{name: "lunch opens at ten", at: at(10, 0), expected: status.MealLunch},
		{name: "late morning lunch", at: at(11, 30), expected: status.MealLunch},
		{name: "dinner opens at fifteen", at: at(15, 0), expected: status.MealEvening},
		{name: "dinner last minute", at: at(20, 59), expected: status.MealEvening},
		{name: "night", at: at(21, 0), expected: status.MealOther},
		{name: "midnight", at: at(0, 0), expected: status.MealOther},
		{name: "before breakfast", at: at(3, 59), expected: status.MealOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Classify(tt.at))
		})
	}
}

func TestClassifyCoversEveryHour(t *testing.T) {
	counts := map[status.MealCode]int{}
	for hour := range 24 {
		counts[model.Classify(at(hour, 0))]++
	}

	assert.Equal(t, 6, counts[status.MealMorning])
	assert.Equal(t, 5, counts[status.MealLunch])
	assert.Equal(t, 6, counts[status.MealEvening])
	assert.Equal(t, 7, counts[status.MealOther])
}

func TestClampEatNum(t *testing.T) {
	n, clamped := model.ClampEatNum(3)
	assert.Equal(t, 3, n)
	assert.False(t, clamped)

	n, clamped = model.ClampEatNum(4)
	assert.Equal(t, 4, n)
	assert.False(t, clamped)

	n, clamped = model.ClampEatNum(9)
	assert.Equal(t, model.MaxEatNum, n)
	assert.True(t, clamped)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 0, model.Total(nil))
	assert.Equal(t, 5, model.Total([]model.MealLog{{EatNum: 2}, {EatNum: 3}}))
}

func TestOnDate(t *testing.T) {
	day := model.OnDate("20251015", "")
	where, args := day.GetWhereClause()
	assert.Equal(t, "(kmc_meal_mgmt.meal_ymd = :meal_ymd)", where)
	assert.Equal(t, "20251015", args["meal_ymd"])

	room := model.OnDate("20251015", "201")
	where, args = room.GetWhereClause()
	assert.Contains(t, where, "kmc_meal_mgmt.room_no = :room_no")
	assert.Equal(t, "201", args["room_no"])
}

var logs = []model.MealLog{
	{RoomNo: "201", MealYmd: "20251015", MealTime: "0730", MealCd: "M", EatNum: 2},
	{RoomNo: "305", MealYmd: "20251015", MealTime: "1215", MealCd: "A", EatNum: 4},
}

func TestWriteCSV(t *testing.T) {
	t.Run("utf-8 with bom", func(t *testing.T) {
		data, err := model.WriteCSV(logs, model.EncodingUTF8)
		require.NoError(t, err)

		require.True(t, bytes.HasPrefix(data, []byte("\ufeff")))

		lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "\ufeff")), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "방번호,식사 날짜,식사 코드,식사 시간,식사 인원", lines[0])
		assert.Equal(t, "201,2025-10-15,M,07:30,2", lines[1])
		assert.Equal(t, "305,2025-10-15,A,12:15,4", lines[2])
	})

	t.Run("euc-kr", func(t *testing.T) {
		data, err := model.WriteCSV(logs, model.EncodingEUCKR)
		require.NoError(t, err)

		assert.False(t, bytes.HasPrefix(data, []byte("\ufeff")))

		decoded, err := korean.EUCKR.NewDecoder().Bytes(data)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(decoded), "방번호,식사 날짜"))
		assert.Contains(t, string(decoded), "201,2025-10-15,M,07:30,2")
	})

	t.Run("header only", func(t *testing.T) {
		data, err := model.WriteCSV(nil, model.EncodingUTF8)
		require.NoError(t, err)
		assert.Equal(t, "\ufeff방번호,식사 날짜,식사 코드,식사 시간,식사 인원\n", string(data))
	})
}

func TestParseEncoding(t *testing.T) {
	assert.Equal(t, model.EncodingEUCKR, model.ParseEncoding("EUC-KR"))
	assert.Equal(t, model.EncodingEUCKR, model.ParseEncoding("cp949"))
	assert.Equal(t, model.EncodingUTF8, model.ParseEncoding(""))
	assert.Equal(t, model.EncodingUTF8, model.ParseEncoding("latin1"))
}

func TestCSVFileName(t *testing.T) {
	assert.Equal(t, "식사목록_20251015.csv", model.CSVFileName("20251015"))
}
