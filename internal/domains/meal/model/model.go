package model

import (
	"kmc/shared/dto"
	"kmc/shared/status"
	"time"
)

const (
	TableName  = "kmc_meal_mgmt"
	EntityName = "meal"

	FieldRoomNo   = "room_no"
	FieldOrg      = "org"
	FieldMealYmd  = "meal_ymd"
	FieldMealTime = "meal_time"
	FieldMealCd   = "meal_cd"
	FieldEatNum   = "eat_num"

	// MaxEatNum is the most diners a single room may log per meal.
	MaxEatNum = 4
	// ManualKmcCd marks a walk-in logged without a matching reservation.
	ManualKmcCd = "K"
)

// MealLog is keyed by (room_no, org, meal_ymd, meal_cd).
type MealLog struct {
	RoomNo   string `db:"room_no"`
	Org      string `db:"org"`
	MealYmd  string `db:"meal_ymd"`
	MealTime string `db:"meal_time"`
	MealCd   string `db:"meal_cd"`
	EatNum   int    `db:"eat_num"`
}

// Classify maps the local hour to a meal slot. Anything outside 04:00-21:00 is Other.
func Classify(t time.Time) status.MealCode {
	switch hour := t.Hour(); {
	case hour >= 4 && hour < 10:
		return status.MealMorning
	case hour >= 10 && hour < 15:
		return status.MealLunch
	case hour >= 15 && hour < 21:
		return status.MealEvening
	default:
		return status.MealOther
	}
}

// ClampEatNum caps n at MaxEatNum and reports whether it had to.
func ClampEatNum(n int) (int, bool) {
	if n > MaxEatNum {
		return MaxEatNum, true
	}

	return n, false
}

func Total(logs []MealLog) int {
	total := 0
	for _, l := range logs {
		total += l.EatNum
	}

	return total
}

// OnDate selects one day of logs, optionally narrowed to a single room.
func OnDate(ymd, roomNo string) dto.FilterGroup {
	filters := []any{
		dto.Filter{Field: FieldMealYmd, Value: ymd, Operator: dto.FilterOperatorEq, Table: TableName},
	}

	if roomNo != "" {
		filters = append(filters, dto.Filter{Field: FieldRoomNo, Value: roomNo, Operator: dto.FilterOperatorEq, Table: TableName})
	}

	return dto.FilterGroup{Filters: filters}
}
