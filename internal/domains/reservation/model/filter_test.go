package model_test

import (
	"kmc/internal/domains/reservation/model"
	"kmc/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByKey(t *testing.T) {
	filter := model.ByKey("AB12CD", 202510)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(kmc_info.kmc_cd = :kmc_cd AND kmc_info.seq_no = :seq_no)", where)
	assert.Equal(t, map[string]any{"kmc_cd": "AB12CD", "seq_no": 202510}, args)
}

func TestActiveOn(t *testing.T) {
	filter := model.ActiveOn("20251015")
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "kmc_info.status_cd IN (:status_cd_0, :status_cd_1)")
	assert.Contains(t, where, "kmc_info.check_in_ymd <= :active_from")
	assert.Contains(t, where, "kmc_info.check_out_ymd >= :active_to")
	assert.Equal(t, "I", args["status_cd_0"])
	assert.Equal(t, "S", args["status_cd_1"])
	assert.Equal(t, "20251015", args["active_from"])
}

func TestTouchesMonth(t *testing.T) {
	filter := dto.FilterGroup{Filters: []any{model.TouchesMonth("202510")}}
	where, args := filter.GetWhereClause()

	assert.Equal(t, "((kmc_info.check_in_ymd LIKE :month_in OR kmc_info.check_out_ymd LIKE :month_out))", where)
	assert.Equal(t, "202510%", args["month_in"])
	assert.Equal(t, "202510%", args["month_out"])
}

func TestCheckInBetween(t *testing.T) {
	filter := model.CheckInBetween("20251015", "20251020")
	where, _ := filter.GetWhereClause()

	assert.Equal(t, "(kmc_info.check_in_ymd > :check_in_after AND kmc_info.check_in_ymd < :check_in_before)", where)
}
