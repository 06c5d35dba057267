package model_test

import (
	"kmc/internal/domains/vacation/model"
	"kmc/shared/datefmt"
	"kmc/shared/status"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		halfDay  bool
		morning  bool
		wantDays []string
		wantPTO  status.PTOCode
		wantErr  error
	}{
		{
			name:     "multi day inclusive",
			start:    "2025-10-14",
			end:      "2025-10-16",
			wantDays: []string{"20251014", "20251015", "20251016"},
			wantPTO:  status.PTOFullDay,
		},
		{
			name:     "crosses month end",
			start:    "20251031",
			end:      "20251101",
			wantDays: []string{"20251031", "20251101"},
			wantPTO:  status.PTOFullDay,
		},
		{
			name:     "morning half",
			start:    "2025-10-15",
			end:      "2025-10-15",
			halfDay:  true,
			morning:  true,
			wantDays: []string{"20251015"},
			wantPTO:  status.PTOMorningHalf,
		},
		{
			name:     "afternoon half",
			start:    "2025-10-15",
			end:      "2025-10-15",
			halfDay:  true,
			wantDays: []string{"20251015"},
			wantPTO:  status.PTOAfternoonHalf,
		},
		{name: "half day over two days", start: "2025-10-15", end: "2025-10-16", halfDay: true, wantErr: model.ErrHalfDayRange},
		{name: "end before start", start: "2025-10-16", end: "2025-10-15", wantErr: datefmt.ErrRangeReversed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := model.NewPlan(tt.start, tt.end, tt.halfDay, tt.morning)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, plan.Days)
			assert.Equal(t, tt.wantPTO, plan.PTO)
		})
	}
}

func TestPlanRows(t *testing.T) {
	plan, err := model.NewPlan("2025-10-14", "2025-10-15", false, false)
	require.NoError(t, err)

	days := plan.DayRows("staff@kmc.org", 42)
	require.Len(t, days, 2)

	for i, day := range days {
		assert.Equal(t, plan.Days[i], day.StartDate)
		assert.Equal(t, day.StartDate, day.EndDate)
		assert.Equal(t, model.KindVacation, day.StatusCd)
		assert.Equal(t, 42, day.ReqNo)
		assert.Equal(t, "AL", day.PtoCd)
	}

	pto := plan.PTORow("staff@kmc.org", 42)
	assert.Equal(t, model.PTO{ReqEmail: "staff@kmc.org", ReqNo: 42, StartYmd: "20251014", EndYmd: "20251015", PtoCd: "AL"}, pto)
}

func TestBookedOn(t *testing.T) {
	fresh := model.BookedOn("staff@kmc.org", []string{"20251014", "20251015"}, 0)
	where, args := fresh.GetWhereClause()

	assert.Contains(t, where, "kmc_guentae_mgmt.start_date IN (:start_date_0, :start_date_1)")
	assert.NotContains(t, where, "req_no")
	assert.Equal(t, "VC", args["status_cd"])

	resubmit := model.BookedOn("staff@kmc.org", []string{"20251014"}, 7)
	where, args = resubmit.GetWhereClause()

	assert.Contains(t, where, "kmc_guentae_mgmt.req_no != :req_no")
	assert.Equal(t, 7, args["req_no"])
}

func TestRequestApproved(t *testing.T) {
	assert.True(t, model.Request{ResCd: "S"}.Approved())
	assert.False(t, model.Request{ResCd: "W"}.Approved())
	assert.False(t, model.Request{ResCd: "C"}.Approved())
}
