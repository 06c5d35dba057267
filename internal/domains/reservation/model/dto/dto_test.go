package dto_test

import (
	"kmc/internal/domains/reservation/model"
	"kmc/internal/domains/reservation/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      dto.CreateReservationRequest
		checkIn  string
		inHHMM   string
		outHHMM  string
		guestNum int
	}{
		{
			name:     "defaults applied",
			req:      dto.CreateReservationRequest{UserNm: "김선교", CheckInYmd: "2025-10-20", CheckOutYmd: "2025-10-22"},
			checkIn:  "20251020",
			inHHMM:   "1400",
			outHHMM:  "1100",
			guestNum: 1,
		},
		{
			name: "explicit values kept",
			req: dto.CreateReservationRequest{
				UserNm: "김선교", CheckInYmd: "20251020", CheckOutYmd: "20251022",
				CheckInHhmm: "15:30", CheckOutHhmm: "0900", GuestNum: 3,
			},
			checkIn:  "20251020",
			inHHMM:   "1530",
			outHHMM:  "0900",
			guestNum: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.ToModel("desk@kmc.org", "AB12CD", 202510, now)

			assert.Equal(t, "AB12CD", got.KmcCd)
			assert.Equal(t, 202510, got.SeqNo)
			assert.Equal(t, tt.checkIn, got.CheckInYmd)
			assert.Equal(t, tt.inHHMM, got.CheckInHhmm)
			assert.Equal(t, tt.outHHMM, got.CheckOutHhmm)
			assert.Equal(t, tt.guestNum, got.GuestNum)
			assert.Equal(t, "S", got.StatusCd)
			require.NotNil(t, got.RegID)
			assert.Equal(t, "desk@kmc.org", *got.RegID)
		})
	}
}

func TestUpdateReservationRequest(t *testing.T) {
	req := dto.UpdateReservationRequest{CheckInYmd: "2025-10-20", CheckOutHhmm: "11:00"}
	req.Normalize()

	assert.Equal(t, "20251020", req.CheckInYmd)
	assert.Equal(t, "1100", req.CheckOutHhmm)
	assert.False(t, req.Empty())

	empty := dto.UpdateReservationRequest{}
	assert.True(t, empty.Empty())

	memo := ""
	assert.False(t, (&dto.UpdateReservationRequest{Memo: &memo}).Empty())
}

func TestReservationResponse_FromModel(t *testing.T) {
	var res dto.ReservationResponse
	res.FromModel(model.Reservation{
		KmcCd: "AB12CD", SeqNo: 202510, CheckInYmd: "20251020", CheckOutYmd: "20251022",
		CheckInHhmm: "1400", CheckOutHhmm: "1100", StatusCd: "I",
	})

	assert.Equal(t, "2025-10-20", res.CheckInYmd)
	assert.Equal(t, "2025-10-22", res.CheckOutYmd)
	assert.Equal(t, "14:00", res.CheckInHhmm)
	assert.Equal(t, "입실", res.StatusLabel)
}
